package services

import (
	"github.com/Longhorn-Developers/UT-Dining-sub000/dao/sqlite"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models/schedule"
	"github.com/Longhorn-Developers/UT-Dining-sub000/util"
)

// StatusService answers the open-status questions for cached locations. All
// evaluation runs against the injected clock in service time; the schedule
// math itself lives in models/schedule and does no I/O.
type StatusService struct {
	cache *sqlite.CacheDAO
	clock util.Clock
}

// NewStatusService constructs a StatusService with its dependencies.
func NewStatusService(cache *sqlite.CacheDAO, clock util.Clock) *StatusService {
	return &StatusService{cache: cache, clock: clock}
}

// scheduleFor resolves a location's normalized schedule from the cache.
// Unknown locations resolve to nil.
func (s *StatusService) scheduleFor(locationName string) (*schedule.WeeklySchedule, error) {
	// Static entries work even before the first sync lands.
	if ws, ok := StaticScheduleFor(locationName); ok {
		return ws, nil
	}
	loc, err := s.cache.GetLocation(locationName)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, nil
	}
	return ResolveSchedule(loc), nil
}

// IsOpen reports whether the location is open right now. Unknown locations
// are closed, not errors.
func (s *StatusService) IsOpen(locationName string) (bool, error) {
	ws, err := s.scheduleFor(locationName)
	if err != nil {
		return false, err
	}
	if ws == nil {
		return false, nil
	}
	return ws.IsOpenAt(s.clock.Now().In(util.ServiceLocation())), nil
}

// Status returns the open flag plus the human status line, or nil for an
// unknown location.
func (s *StatusService) Status(locationName string) (*models.LocationStatus, error) {
	ws, err := s.scheduleFor(locationName)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, nil
	}
	now := s.clock.Now().In(util.ServiceLocation())
	return &models.LocationStatus{
		Name:    locationName,
		Open:    ws.IsOpenAt(now),
		Message: ws.StatusMessageAt(now),
	}, nil
}

// ScheduleTable returns the display grid of a location's weekly hours, or
// nil for an unknown location.
func (s *StatusService) ScheduleTable(locationName string) ([]schedule.TableRow, error) {
	ws, err := s.scheduleFor(locationName)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, nil
	}
	return ws.Table(), nil
}

// WeeklySchedule exposes the resolved schedule itself, for the hours plot.
func (s *StatusService) WeeklySchedule(locationName string) (*schedule.WeeklySchedule, error) {
	return s.scheduleFor(locationName)
}
