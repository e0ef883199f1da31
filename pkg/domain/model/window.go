package model

import (
	"fmt"
	"time"

	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type SinceType string

const (
	SinceDay   SinceType = "day"
	SinceWeek  SinceType = "week"
	SinceMonth SinceType = "month"
	SinceYear  SinceType = "year"
)

// TimeWindow selects how far back commits are listed, e.g. {day, 14}.
type TimeWindow struct {
	Type     SinceType `json:"type"`
	Quantity int       `json:"quantity"`
}

func (x TimeWindow) Validate() error {
	switch x.Type {
	case SinceDay, SinceWeek, SinceMonth, SinceYear:
	default:
		return goerr.Wrap(types.ErrValidationFailed, "invalid since type", goerr.V("type", x.Type))
	}
	if x.Quantity <= 0 {
		return goerr.Wrap(types.ErrValidationFailed, "since quantity must be positive", goerr.V("quantity", x.Quantity))
	}
	return nil
}

// Since returns the absolute timestamp that lies the window's length before now.
// Month and year steps clamp to the last day of the target month, so 31 March
// minus one month is the end of February rather than early March.
func (x TimeWindow) Since(now time.Time) time.Time {
	switch x.Type {
	case SinceDay:
		return now.AddDate(0, 0, -x.Quantity)
	case SinceWeek:
		return now.AddDate(0, 0, -7*x.Quantity)
	case SinceMonth:
		return addMonthsClamped(now, -x.Quantity)
	case SinceYear:
		return addMonthsClamped(now, -12*x.Quantity)
	}
	return now
}

func (x TimeWindow) String() string {
	if x.Quantity == 1 {
		return fmt.Sprintf("%d %s", x.Quantity, x.Type)
	}
	return fmt.Sprintf("%d %ss", x.Quantity, x.Type)
}

func addMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, months, 0)

	day := t.Day()
	if last := daysIn(target.Year(), target.Month(), t.Location()); day > last {
		day = last
	}
	return target.AddDate(0, 0, day-1)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
