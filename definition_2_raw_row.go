package shiftoverlap

import (
	"errors"
	"strings"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
)

// RawRow is one extracted schedule row as delivered by the document
// extraction collaborator. Clock texts may be 24-hour ("22:00") or 12-hour
// with meridiem ("10:00PM").
type RawRow struct {
	Employee  string
	Day       time.Time
	StartTime string
	EndTime   string
}

// NormalizeEmployeeName uppercases and collapses inner whitespace so the same
// person extracted twice compares equal.
func NormalizeEmployeeName(name string) string {
	return strings.Join(
		strings.Fields(strings.ToUpper(name)),
		" ",
	)
}

// NormalizeRow turns a raw row into a canonical ShiftInterval.
//
// Overnight rule: an end time numerically before the start time means the
// shift crosses midnight and the end is moved one day forward on the shift's
// timeline. An end equal to the start stays an error. This numeric rule is
// the only overnight signal.
func NormalizeRow(row *RawRow) (*ShiftInterval, error) {
	if row == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "NormalizeRow",
				Issue: goerrors.ErrNilInput{
					InputName: "row",
				},
			}
	}

	employee := NormalizeEmployeeName(row.Employee)
	if len(employee) == 0 {
		return nil,
			ErrMalformedRow{
				Issue: goerrors.ErrNilInput{
					InputName: "Employee",
				},
			}
	}

	if row.Day.IsZero() {
		return nil,
			ErrMalformedRow{
				Issue: goerrors.ErrNilInput{
					InputName: "Day",
				},
			}
	}

	for _, field := range []struct {
		Name  string
		Value string
	}{
		{"StartTime", row.StartTime},
		{"EndTime", row.EndTime},
	} {
		if len(strings.TrimSpace(field.Value)) == 0 {
			return nil,
				ErrMalformedRow{
					Issue: goerrors.ErrNilInput{
						InputName: field.Name,
					},
				}
		}
	}

	startMinute, errStart := parseClockMinute(row.StartTime)
	if errStart != nil {
		return nil,
			ErrMalformedTime{
				Employee: employee,
				Value:    row.StartTime,
				Issue:    errStart,
			}
	}

	endMinute, errEnd := parseClockMinute(row.EndTime)
	if errEnd != nil {
		return nil,
			ErrMalformedTime{
				Employee: employee,
				Value:    row.EndTime,
				Issue:    errEnd,
			}
	}

	if endMinute == startMinute {
		return nil,
			ErrMalformedTime{
				Employee: employee,
				Value:    row.EndTime,
				Issue: errors.New(
					"zero-length shift",
				),
			}
	}

	if endMinute < startMinute {
		endMinute += MinutesPerDay
	}

	return NewShiftInterval(
		&ParamsNewShiftInterval{
			Employee: employee,
			Day:      row.Day,

			StartMinute: startMinute,
			EndMinute:   endMinute,
		},
	)
}

// NormalizeRows converts raw rows into shift intervals, collecting row-level
// failures instead of aborting: the caller gets every usable interval plus
// one RowError per skipped row.
func NormalizeRows(rows []RawRow) ([]ShiftInterval, []error) {
	var intervals []ShiftInterval
	var rowErrors []error

	for ix := range rows {
		interval, errNormalize := NormalizeRow(&rows[ix])
		if errNormalize != nil {
			rowErrors = append(
				rowErrors,
				RowError{
					RowNumber: ix + 1,
					Issue:     errNormalize,
				},
			)

			continue
		}

		intervals = append(intervals, *interval)
	}

	return intervals, rowErrors
}
