package schedule

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"studiobook/config"
	"studiobook/models"
	"studiobook/utils"
)

// DefaultScheduleService is the production scheduling engine.
type DefaultScheduleService struct {
	Source    *SourceAdapter
	Generator *Generator
	Cache     *redis.Client
}

// LoadCalendar returns the merged calendar, served from the Redis snapshot
// when fresh. The snapshot is best-effort: cache failures fall through to
// the store.
func (s *DefaultScheduleService) LoadCalendar(ctx context.Context) (*Calendar, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		raw, err := s.Cache.Get(ctx, utils.CalendarCacheKey).Bytes()
		if err == nil {
			var intervals []models.Interval
			if err := json.Unmarshal(raw, &intervals); err == nil {
				return NewCalendar(intervals), nil
			}
			logger.Warn("discarding undecodable calendar snapshot", zap.Error(err))
		}
	}

	intervals, err := s.Source.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(intervals); err == nil {
			ttl := time.Duration(config.AppConfig.CalendarCacheTTLSecs) * time.Second
			if err := s.Cache.Set(ctx, utils.CalendarCacheKey, raw, ttl).Err(); err != nil {
				logger.Warn("failed to cache calendar snapshot", zap.Error(err))
			}
		}
	}
	return NewCalendar(intervals), nil
}

// IntervalsOnDay answers the day-membership query for the calendar grid.
func (s *DefaultScheduleService) IntervalsOnDay(ctx context.Context, day string) ([]models.Interval, error) {
	d, err := utils.ParseDay(day)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}
	cal, err := s.LoadCalendar(ctx)
	if err != nil {
		return nil, err
	}
	return cal.IntervalsOnDay(d), nil
}

// FreeGaps lists the free gaps between busy intervals within the window.
func (s *DefaultScheduleService) FreeGaps(ctx context.Context, windowStart, windowEnd string, minDays int) ([]models.Gap, error) {
	start, err := utils.ParseDay(windowStart)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}
	end, err := utils.ParseDay(windowEnd)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}
	cal, err := s.LoadCalendar(ctx)
	if err != nil {
		return nil, err
	}
	if minDays < 1 {
		minDays = 1
	}
	return ListGaps(cal.BusySet(), start, end, minDays), nil
}

// CreateTimeOff records a personal block and invalidates the snapshot.
func (s *DefaultScheduleService) CreateTimeOff(ctx context.Context, reason, startDate, endDate string) (models.Interval, error) {
	if startDate == "" || endDate == "" {
		return models.Interval{}, NewValidationError("start and end dates are required")
	}
	start, err := utils.ParseDay(startDate)
	if err != nil {
		return models.Interval{}, NewValidationError(err.Error())
	}
	end, err := utils.ParseDay(endDate)
	if err != nil {
		return models.Interval{}, NewValidationError(err.Error())
	}

	iv := models.Interval{
		Kind:   models.KindTimeOff,
		Title:  reason,
		Start:  start,
		End:    end,
		Source: models.SourceBookouts,
	}
	id, err := s.Source.Create(ctx, iv)
	if err != nil {
		return models.Interval{}, err
	}
	iv.ID = id
	s.invalidateSnapshot(ctx)
	return iv, nil
}

// UpdateInterval writes the new date range back and invalidates the snapshot.
func (s *DefaultScheduleService) UpdateInterval(ctx context.Context, iv models.Interval) error {
	if err := s.Source.Update(ctx, iv); err != nil {
		return err
	}
	s.invalidateSnapshot(ctx)
	return nil
}

// RemoveInterval deletes the backing record and invalidates the snapshot.
func (s *DefaultScheduleService) RemoveInterval(ctx context.Context, id string, kind models.IntervalKind) error {
	if err := s.Source.Remove(ctx, id, kind); err != nil {
		return err
	}
	s.invalidateSnapshot(ctx)
	return nil
}

// GenerateGhosts runs the generator and invalidates the snapshot when
// anything was placed.
func (s *DefaultScheduleService) GenerateGhosts(ctx context.Context, cfg models.GhostConfig) ([]models.Interval, error) {
	ghosts, err := s.Generator.Generate(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if len(ghosts) > 0 {
		s.invalidateSnapshot(ctx)
	}
	return ghosts, nil
}

// ListGhosts returns the stored ghost intervals.
func (s *DefaultScheduleService) ListGhosts(ctx context.Context) ([]models.Interval, error) {
	bookouts, err := s.Source.Bookouts.GetByType(ctx, models.BookoutTypeGhost)
	if err != nil {
		return nil, NewStoreReadError("failed to load ghosts", err)
	}
	logger := utils.GetLogger()
	ghosts := make([]models.Interval, 0, len(bookouts))
	for _, b := range bookouts {
		iv, err := IntervalFromBookout(b)
		if err != nil {
			logger.Warn("skipping ghost with malformed dates",
				zap.String("bookoutID", b.ID), zap.Error(err))
			continue
		}
		ghosts = append(ghosts, iv)
	}
	return ghosts, nil
}

// BulkDeleteGhosts deletes the given ids as one batch via the bulk manager.
func (s *DefaultScheduleService) BulkDeleteGhosts(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, NewValidationError("no ghost ids supplied")
	}
	mgr := NewBulkManager(s.Source)
	mgr.SetGhosts(ids)
	mgr.SelectAll()
	deleted, err := mgr.DeleteSelected(ctx)
	if err != nil {
		return 0, err
	}
	s.invalidateSnapshot(ctx)
	return deleted, nil
}

func (s *DefaultScheduleService) invalidateSnapshot(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.CalendarCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate calendar snapshot", zap.Error(err))
	}
}
