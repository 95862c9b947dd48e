package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Malaysia time location (MYT, +08:00)
var myLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kuala_Lumpur"); err == nil {
		return loc
	}
	return time.FixedZone("MYT", 8*3600)
}()

func NowMY() time.Time { return time.Now().In(myLoc) }

// ParseDateMY parses a YYYY-MM-DD string as midnight in Malaysia time.
func ParseDateMY(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, myLoc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

func FormatDateMY(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(myLoc).Format(DateLayout)
}

// DayCount is the number of calendar days covered by [start, end], both
// inclusive. It is zero when end is before start.
func DayCount(start, end time.Time) int {
	sy, sm, sd := start.In(myLoc).Date()
	ey, em, ed := end.In(myLoc).Date()
	from := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}
