package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studiobook/models"
	"studiobook/utils"
)

// day builds a midnight-UTC calendar day for tests.
func day(s string) time.Time {
	t, err := utils.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

type fakeBookingRepo struct {
	bookings []models.Booking
	failRead bool
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	if b.ID == "" {
		b.ID = fmt.Sprintf("bk-%d", len(f.bookings)+1)
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, errors.New("booking not found")
}

func (f *fakeBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	if f.failRead {
		return nil, errors.New("read failed")
	}
	return append([]models.Booking(nil), f.bookings...), nil
}

func (f *fakeBookingRepo) GetAllExcludingStatuses(ctx context.Context, excluded []string) ([]models.Booking, error) {
	if f.failRead {
		return nil, errors.New("read failed")
	}
	var out []models.Booking
	for _, b := range f.bookings {
		skip := false
		for _, s := range excluded {
			if b.Status == s {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, id string, updated *models.Booking) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			updated.ID = id
			f.bookings[i] = *updated
			return nil
		}
	}
	return errors.New("booking not found")
}

func (f *fakeBookingRepo) UpdateDates(ctx context.Context, id, start, end string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].StartDate = start
			f.bookings[i].EndDate = end
			return nil
		}
	}
	return errors.New("booking not found")
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			return nil
		}
	}
	return errors.New("booking not found")
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return errors.New("booking not found")
}

type fakeBookoutRepo struct {
	bookouts  []models.Bookout
	failWrite bool
	failRead  bool
}

func (f *fakeBookoutRepo) Create(ctx context.Context, b *models.Bookout) error {
	if f.failWrite {
		return errors.New("write failed")
	}
	if b.ID == "" {
		b.ID = fmt.Sprintf("bo-%d", len(f.bookouts)+1)
	}
	f.bookouts = append(f.bookouts, *b)
	return nil
}

func (f *fakeBookoutRepo) CreateMany(ctx context.Context, bookouts []models.Bookout) ([]string, error) {
	if f.failWrite {
		return nil, errors.New("write failed")
	}
	ids := make([]string, len(bookouts))
	for i, b := range bookouts {
		if b.ID == "" {
			b.ID = fmt.Sprintf("bo-%d", len(f.bookouts)+1)
		}
		ids[i] = b.ID
		f.bookouts = append(f.bookouts, b)
	}
	return ids, nil
}

func (f *fakeBookoutRepo) GetAll(ctx context.Context) ([]models.Bookout, error) {
	if f.failRead {
		return nil, errors.New("read failed")
	}
	return append([]models.Bookout(nil), f.bookouts...), nil
}

func (f *fakeBookoutRepo) GetByType(ctx context.Context, bookoutType string) ([]models.Bookout, error) {
	if f.failRead {
		return nil, errors.New("read failed")
	}
	var out []models.Bookout
	for _, b := range f.bookouts {
		if b.Type == bookoutType {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookoutRepo) Update(ctx context.Context, id string, updated *models.Bookout) error {
	if f.failWrite {
		return errors.New("write failed")
	}
	for i := range f.bookouts {
		if f.bookouts[i].ID == id {
			updated.ID = id
			f.bookouts[i] = *updated
			return nil
		}
	}
	return errors.New("bookout not found")
}

func (f *fakeBookoutRepo) DeleteByID(ctx context.Context, id string) error {
	if f.failWrite {
		return errors.New("write failed")
	}
	for i := range f.bookouts {
		if f.bookouts[i].ID == id {
			f.bookouts = append(f.bookouts[:i], f.bookouts[i+1:]...)
			return nil
		}
	}
	return errors.New("bookout not found")
}

func (f *fakeBookoutRepo) DeleteManyByIDs(ctx context.Context, ids []string) (int64, error) {
	if f.failWrite {
		return 0, errors.New("write failed")
	}
	var deleted int64
	var remaining []models.Bookout
	for _, b := range f.bookouts {
		found := false
		for _, id := range ids {
			if b.ID == id {
				found = true
				break
			}
		}
		if found {
			deleted++
		} else {
			remaining = append(remaining, b)
		}
	}
	f.bookouts = remaining
	return deleted, nil
}

func newTestAdapter(bookings *fakeBookingRepo, bookouts *fakeBookoutRepo) *SourceAdapter {
	return &SourceAdapter{
		Bookings: bookings,
		Bookouts: bookouts,
		Excluded: []string{"archived", "deleted", "postponed"},
	}
}

// stubRoller pins both random draws for deterministic generator tests.
type stubRoller struct {
	roll float64
	pick func(lo, hi int) int
}

func (s stubRoller) Roll() float64 { return s.roll }

func (s stubRoller) IntBetween(lo, hi int) int {
	if s.pick != nil {
		return s.pick(lo, hi)
	}
	return lo
}
