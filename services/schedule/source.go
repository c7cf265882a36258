package schedule

import (
	"context"

	"go.uber.org/zap"

	bookingRepo "studiobook/database/repository/booking"
	bookoutRepo "studiobook/database/repository/bookout"
	"studiobook/models"
	"studiobook/utils"
)

// SourceAdapter translates raw records from the bookings and bookouts
// collections into Interval values, and routes engine-level writes back to
// the collection implied by the interval kind.
type SourceAdapter struct {
	Bookings bookingRepo.BookingRepository
	Bookouts bookoutRepo.BookoutRepository
	// Excluded is the busy-exclusion status list applied to bookings at
	// load time, so downstream components never see removed records.
	Excluded []string
}

// LoadAll fetches all non-excluded bookings and all bookouts, normalized to
// intervals. Records with malformed dates are skipped with a warning rather
// than failing the whole load.
func (a *SourceAdapter) LoadAll(ctx context.Context) ([]models.Interval, error) {
	logger := utils.GetLogger()

	bookings, err := a.Bookings.GetAllExcludingStatuses(ctx, a.Excluded)
	if err != nil {
		return nil, NewStoreReadError("failed to load bookings", err)
	}
	bookouts, err := a.Bookouts.GetAll(ctx)
	if err != nil {
		return nil, NewStoreReadError("failed to load bookouts", err)
	}

	intervals := make([]models.Interval, 0, len(bookings)+len(bookouts))
	for _, b := range bookings {
		iv, err := IntervalFromBooking(b)
		if err != nil {
			logger.Warn("skipping booking with malformed dates",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		intervals = append(intervals, iv)
	}
	for _, b := range bookouts {
		iv, err := IntervalFromBookout(b)
		if err != nil {
			logger.Warn("skipping bookout with malformed dates",
				zap.String("bookoutID", b.ID), zap.Error(err))
			continue
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

// Create persists a new interval into its backing collection.
func (a *SourceAdapter) Create(ctx context.Context, iv models.Interval) (string, error) {
	if err := ValidateInterval(iv); err != nil {
		return "", err
	}
	switch iv.Kind {
	case models.KindTimeOff, models.KindGhost:
		bo := bookoutFromInterval(iv)
		if err := a.Bookouts.Create(ctx, &bo); err != nil {
			return "", NewStoreWriteError("failed to create bookout", err)
		}
		return bo.ID, nil
	case models.KindBooking:
		b := models.Booking{
			ID:        iv.ID,
			Title:     iv.Title,
			StartDate: utils.FormatDay(iv.Start),
			EndDate:   utils.FormatDay(iv.End),
			Status:    iv.Status,
		}
		if b.Status == "" {
			b.Status = models.BookingStatusPending
		}
		if err := a.Bookings.Create(ctx, &b); err != nil {
			return "", NewStoreWriteError("failed to create booking", err)
		}
		return b.ID, nil
	default:
		return "", NewValidationError("unknown interval kind")
	}
}

// CreateGhosts batch-inserts generated ghost intervals. The batch is a
// single ordered write; on failure nothing is considered applied.
func (a *SourceAdapter) CreateGhosts(ctx context.Context, ghosts []models.Interval) ([]string, error) {
	bookouts := make([]models.Bookout, len(ghosts))
	for i, g := range ghosts {
		if err := ValidateInterval(g); err != nil {
			return nil, err
		}
		bookouts[i] = bookoutFromInterval(g)
	}
	ids, err := a.Bookouts.CreateMany(ctx, bookouts)
	if err != nil {
		return nil, NewStoreWriteError("failed to batch insert ghosts", err)
	}
	return ids, nil
}

// Update writes an interval's mutable fields back to its own record.
func (a *SourceAdapter) Update(ctx context.Context, iv models.Interval) error {
	if err := ValidateInterval(iv); err != nil {
		return err
	}
	if iv.ID == "" {
		return NewValidationError("interval id is required for update")
	}
	switch iv.Kind {
	case models.KindTimeOff, models.KindGhost:
		bo := bookoutFromInterval(iv)
		if err := a.Bookouts.Update(ctx, iv.ID, &bo); err != nil {
			return NewStoreWriteError("failed to update bookout", err)
		}
	case models.KindBooking:
		if err := a.Bookings.UpdateDates(ctx, iv.ID, utils.FormatDay(iv.Start), utils.FormatDay(iv.End)); err != nil {
			return NewStoreWriteError("failed to update booking dates", err)
		}
	default:
		return NewValidationError("unknown interval kind")
	}
	return nil
}

// Remove deletes the record backing an interval.
func (a *SourceAdapter) Remove(ctx context.Context, id string, kind models.IntervalKind) error {
	if id == "" {
		return NewValidationError("interval id is required for delete")
	}
	switch kind {
	case models.KindTimeOff, models.KindGhost:
		if err := a.Bookouts.DeleteByID(ctx, id); err != nil {
			return NewStoreWriteError("failed to delete bookout", err)
		}
	case models.KindBooking:
		if err := a.Bookings.Delete(ctx, id); err != nil {
			return NewStoreWriteError("failed to delete booking", err)
		}
	default:
		return NewValidationError("unknown interval kind")
	}
	return nil
}

// IntervalFromBooking maps a booking record into the unified interval shape.
func IntervalFromBooking(b models.Booking) (models.Interval, error) {
	start, err := utils.ParseDay(b.StartDate)
	if err != nil {
		return models.Interval{}, err
	}
	end, err := utils.ParseDay(b.EndDate)
	if err != nil {
		return models.Interval{}, err
	}
	return models.Interval{
		ID:     b.ID,
		Kind:   models.KindBooking,
		Title:  b.Title,
		Start:  start,
		End:    end,
		Status: b.Status,
		Source: models.SourceBookings,
	}, nil
}

// IntervalFromBookout maps a bookout record into the unified interval shape.
func IntervalFromBookout(b models.Bookout) (models.Interval, error) {
	start, err := utils.ParseDay(b.StartDate)
	if err != nil {
		return models.Interval{}, err
	}
	end, err := utils.ParseDay(b.EndDate)
	if err != nil {
		return models.Interval{}, err
	}
	kind := models.KindTimeOff
	if b.Type == models.BookoutTypeGhost {
		kind = models.KindGhost
	}
	return models.Interval{
		ID:     b.ID,
		Kind:   kind,
		Title:  b.Reason,
		Start:  start,
		End:    end,
		Source: models.SourceBookouts,
	}, nil
}

func bookoutFromInterval(iv models.Interval) models.Bookout {
	boType := models.BookoutTypePersonal
	if iv.Kind == models.KindGhost {
		boType = models.BookoutTypeGhost
	}
	return models.Bookout{
		ID:        iv.ID,
		Reason:    iv.Title,
		Type:      boType,
		StartDate: utils.FormatDay(iv.Start),
		EndDate:   utils.FormatDay(iv.End),
	}
}

// ValidateInterval rejects intervals that cannot be saved.
func ValidateInterval(iv models.Interval) error {
	if iv.Start.IsZero() || iv.End.IsZero() {
		return NewValidationError("interval start and end dates are required")
	}
	if iv.Start.After(iv.End) {
		return NewValidationError("interval start must not be after end")
	}
	return nil
}
