package schedule

import "time"

// Opening hours in host local time. The window is [OpenHour, CloseHour).
const (
	OpenHour  = 9
	CloseHour = 17
)

// Clock returns the current time.
type Clock func() time.Time

// SystemClock reads the host clock in local time.
func SystemClock() time.Time {
	return time.Now()
}

// Returns whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	day := t.Weekday()
	return day >= time.Monday && day <= time.Friday
}

// Returns whether the hour of t is inside the opening window. 16:59 is open,
// 17:00 is not.
func IsWithinHours(t time.Time) bool {
	hour := t.Hour()
	return hour >= OpenHour && hour < CloseHour
}

// Returns whether the site is open at t.
func IsOpen(t time.Time) bool {
	return IsWeekday(t) && IsWithinHours(t)
}

// Returns whether or not the current time is within the operating hours.
// A nil clock reads the host clock.
func IsInOperatingHours(clock Clock) bool {
	if clock == nil {
		clock = SystemClock
	}
	return IsOpen(clock())
}

// Notice is what the closed page shows about the moment access was refused.
type Notice struct {
	Day  string
	Time string
}

// NoticeAt formats t for the closed page, e.g. {"Saturday", "05:07 PM"}.
func NoticeAt(t time.Time) Notice {
	return Notice{
		Day:  t.Weekday().String(),
		Time: t.Format("03:04 PM"),
	}
}
