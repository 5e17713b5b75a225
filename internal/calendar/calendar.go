// Package calendar builds external calendar links for aarti reminders.
package calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	renderURL  = "https://www.google.com/calendar/render"
	dateLayout = "20060102T150405Z"

	defaultLocation = "Nashik"
	defaultDetails  = "Aarti at Nashik Kumbh"
	defaultDuration = 30 * time.Minute
)

// EventURL returns a Google Calendar template link for a reminder starting
// at start and running for the given duration.
func EventURL(title, location, details string, start time.Time, duration time.Duration) string {
	if location == "" {
		location = defaultLocation
	}
	if details == "" {
		details = defaultDetails
	}
	if duration <= 0 {
		duration = defaultDuration
	}

	v := url.Values{}
	v.Set("action", "TEMPLATE")
	v.Set("text", title)
	v.Set("dates", start.UTC().Format(dateLayout)+"/"+start.Add(duration).UTC().Format(dateLayout))
	v.Set("details", details)
	v.Set("location", location)

	return renderURL + "?" + v.Encode()
}

// At combines a day with a timetable clock string such as "5:30 AM" or
// "17:45".
func At(day time.Time, clock string) (time.Time, error) {
	clock = strings.TrimSpace(clock)
	for _, layout := range []string{"3:04 PM", "15:04"} {
		if t, err := time.Parse(layout, clock); err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized clock value %q", clock)
}

// ReminderDuration parses timetable durations such as "30 minutes". Anything
// unparsable falls back to the default.
func ReminderDuration(s string) time.Duration {
	var n int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d", &n); err != nil || n <= 0 {
		return defaultDuration
	}
	return time.Duration(n) * time.Minute
}
