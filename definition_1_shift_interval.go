package shiftoverlap

import (
	"errors"
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
)

// ShiftInterval is one employee's single shift on one calendar day, expressed
// in minutes since midnight of that day. An EndMinute at or past 1440 is a
// time on the following calendar day (overnight shift); the Day field stays
// the day the shift starts on.
type ShiftInterval struct {
	Employee string
	Day      time.Time

	StartMinute int64
	EndMinute   int64
}

type ParamsNewShiftInterval struct {
	Employee string
	Day      time.Time

	StartMinute int64
	EndMinute   int64
}

func (params *ParamsNewShiftInterval) IsValid() error {
	if len(params.Employee) == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewShiftInterval",
			Issue: goerrors.ErrNilInput{
				InputName: "Employee",
			},
		}
	}

	if params.Day.IsZero() {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewShiftInterval",
			Issue: goerrors.ErrNilInput{
				InputName: "Day",
			},
		}
	}

	if params.StartMinute < 0 || params.StartMinute >= MinutesPerDay {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewShiftInterval",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "StartMinute",
				InputValue: params.StartMinute,
			},
		}
	}

	if params.EndMinute <= params.StartMinute || params.EndMinute >= 2*MinutesPerDay {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewShiftInterval",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "EndMinute",
				InputValue: params.EndMinute,
				Issue: errors.New(
					"end minute not after start minute on the shift timeline",
				),
			},
		}
	}

	return nil
}

func NewShiftInterval(params *ParamsNewShiftInterval) (*ShiftInterval, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &ShiftInterval{
			Employee: params.Employee,
			Day:      DayOf(params.Day),

			StartMinute: params.StartMinute,
			EndMinute:   params.EndMinute,
		},
		nil
}

func (interval *ShiftInterval) DurationMinutes() int64 {
	return interval.EndMinute - interval.StartMinute
}

func (interval *ShiftInterval) DurationHours() float64 {
	return float64(interval.DurationMinutes()) / MinutesPerHour
}

func (interval *ShiftInterval) CrossesMidnight() bool {
	return interval.EndMinute > MinutesPerDay
}

func (interval *ShiftInterval) String() string {
	return fmt.Sprintf(
		"%s %s [%s-%s%s]",

		interval.Employee,
		interval.Day.Format("2006-01-02"),
		formatClockMinute(interval.StartMinute),
		formatClockMinute(interval.EndMinute),
		ternary(interval.CrossesMidnight(), " +1d", ""),
	)
}

// DayOf truncates a timestamp to its calendar day, the key used throughout
// the schedule maps.
func DayOf(t time.Time) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		0, 0, 0, 0,
		time.UTC,
	)
}
