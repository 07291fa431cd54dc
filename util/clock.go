package util

import (
	"log"
	"sync"
	"time"

	"github.com/Longhorn-Developers/UT-Dining-sub000/config"
)

// Clock abstracts "now" so schedule evaluation and sync cadence can be tested
// against a fixed instant.
type Clock interface {
	Now() time.Time
}

// ServiceClock reports the current instant in the campus timezone, regardless
// of where the host thinks it is.
type ServiceClock struct{}

var (
	serviceLocation     *time.Location
	serviceLocationOnce sync.Once
)

// ServiceLocation returns the campus timezone, falling back to host-local
// time when the tz database is unavailable. The fallback degrades menu
// rollover accuracy but is never fatal.
func ServiceLocation() *time.Location {
	serviceLocationOnce.Do(func() {
		loc, err := time.LoadLocation(config.SERVICE_TIMEZONE)
		if err != nil {
			log.Printf("[Clock] Failed to load %s, falling back to local time: %v", config.SERVICE_TIMEZONE, err)
			loc = time.Local
		}
		serviceLocation = loc
	})
	return serviceLocation
}

func NewServiceClock() *ServiceClock {
	return &ServiceClock{}
}

// Now returns the current instant in the service timezone.
func (c *ServiceClock) Now() time.Time {
	return time.Now().In(ServiceLocation())
}

// Today returns the canonical YYYY-MM-DD date key for "today's" menus.
func Today(clock Clock) string {
	return clock.Now().In(ServiceLocation()).Format("2006-01-02")
}

// FixedClock always reports the same instant. Test use only.
type FixedClock struct {
	Instant time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.Instant
}
