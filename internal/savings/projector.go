// Package savings projects how much must be saved per day to reach a
// goal amount by its end date.
package savings

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// User-facing messages for the non-numeric outcomes.
const (
	PromptMessage       = "위 칸을 채워주시면 하루에 얼마씩 돈을 모아야 할지 알려드려요!"
	InvalidRangeMessage = "종료 날짜는 시작 날짜 이후로 설정해주세요."
)

const dateLayout = "2006-01-02"

const millisPerDay = 24 * 60 * 60 * 1000

// Kind classifies a projection result.
type Kind int

const (
	// Prompt means the inputs are incomplete; show the fill-me-in hint.
	Prompt Kind = iota
	// InvalidRange means the end date is not after the effective start.
	InvalidRange
	// Projected means Daily and Days carry a valid projection.
	Projected
)

// Result is the outcome of a projection. Daily and Days are only
// meaningful when Kind == Projected.
type Result struct {
	Kind  Kind
	Daily int64 // required amount per day, rounded up
	Days  int   // days from effective start to end, rounded up
}

// Message returns the display message for non-projected results, and
// "" for a projected one (callers format those themselves).
func (r Result) Message() string {
	switch r.Kind {
	case Prompt:
		return PromptMessage
	case InvalidRange:
		return InvalidRangeMessage
	default:
		return ""
	}
}

// Project computes the required daily savings for amount won between
// the effective start date and endDate. The effective start falls back
// from startDate through selectedDate to now. Rounding is always up:
// the projection must never understate what has to be saved.
func Project(amount, startDate, endDate, selectedDate string, now time.Time) Result {
	target, err := strconv.ParseInt(strings.TrimSpace(amount), 10, 64)
	if err != nil || target <= 0 {
		return Result{Kind: Prompt}
	}

	end, err := time.ParseInLocation(dateLayout, endDate, time.Local)
	if err != nil {
		return Result{Kind: Prompt}
	}

	start := now
	if startDate != "" {
		if t, err := time.ParseInLocation(dateLayout, startDate, time.Local); err == nil {
			start = t
		}
	} else if selectedDate != "" {
		if t, err := time.ParseInLocation(dateLayout, selectedDate, time.Local); err == nil {
			start = t
		}
	}

	if !end.After(start) {
		return Result{Kind: InvalidRange}
	}

	diff := end.Sub(start).Milliseconds()
	days := int((diff + millisPerDay - 1) / millisPerDay)

	daily := decimal.NewFromInt(target).
		Div(decimal.NewFromInt(int64(days))).
		Ceil().
		IntPart()

	return Result{Kind: Projected, Daily: daily, Days: days}
}
