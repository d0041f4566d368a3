package schema

import (
	"fmt"
	"time"
)

// isoLayouts covers the extended and basic ISO-8601 forms: a date alone, or
// a date and a time (hour, minute or second precision, optional fraction)
// joined by 'T' or a space, optionally followed by Z or a numeric offset
// (+hh:mm, +hhmm or +hh).
var isoLayouts = buildISOLayouts()

func buildISOLayouts() []string {
	dates := []string{"2006-01-02", "20060102"}
	clocks := []string{"15:04:05", "15:04", "150405", "1504", "15"}
	zones := []string{"", "Z07:00", "Z0700", "Z07"}

	layouts := append([]string{}, dates...)
	for _, date := range dates {
		for _, sep := range []string{"T", " "} {
			for _, clock := range clocks {
				for _, zone := range zones {
					layouts = append(layouts, date+sep+clock+zone)
				}
			}
		}
	}
	return layouts
}

// ParseDateTime parses s as an ISO-8601 date or date-time. Values without an
// offset are returned in UTC.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid isoformat string: %q", s)
}
