// Package biztime provides time helpers anchored to the business timezone.
// Storage and transport always use UTC; the business timezone only affects
// how dates are rendered to users.
package biztime

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // distroless images ship without zoneinfo
)

// DefaultTimezone is the timezone of the catalog's audience.
const DefaultTimezone = "America/Sao_Paulo"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init loads the business timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone, initializing the default when needed.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// AddDays returns t shifted by the given number of whole days.
func AddDays(t time.Time, days int) time.Time {
	return t.Add(time.Duration(days) * 24 * time.Hour)
}

// FormatDate renders t as a dd/mm/yyyy date in the business timezone.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format("02/01/2006")
}

// FormatDateTime renders t as dd/mm/yyyy hh:mm in the business timezone.
func FormatDateTime(t time.Time) string {
	return t.In(Location()).Format("02/01/2006 15:04")
}
