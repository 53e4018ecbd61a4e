package shiftoverlap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmployeeName(t *testing.T) {
	require.Equal(t, "ANA MARIA", NormalizeEmployeeName("  ana   Maria "))
	require.Equal(t, "", NormalizeEmployeeName("   "))
}

func TestNormalizeRow(t *testing.T) {
	t.Run(
		"1. plain day shift",
		func(t *testing.T) {
			interval, errNorm := NormalizeRow(
				&RawRow{
					Employee:  "Ana",
					Day:       day,
					StartTime: "09:00",
					EndTime:   "17:30",
				},
			)
			require.NoError(t, errNorm)
			require.NotNil(t, interval)

			require.Equal(t, "ANA", interval.Employee)
			require.Equal(t, int64(540), interval.StartMinute)
			require.Equal(t, int64(1050), interval.EndMinute)
		},
	)

	t.Run(
		"2. overnight rule, 24-hour",
		func(t *testing.T) {
			interval, errNorm := NormalizeRow(
				&RawRow{
					Employee:  "BOB",
					Day:       day,
					StartTime: "22:00",
					EndTime:   "06:00",
				},
			)
			require.NoError(t, errNorm)

			require.Equal(t, int64(1320), interval.StartMinute)
			require.Equal(t, int64(1800), interval.EndMinute)
			require.InDelta(t, 8.0, interval.DurationHours(), 0.0001)
			require.True(t, interval.CrossesMidnight())
		},
	)

	t.Run(
		"3. overnight rule, meridiem",
		func(t *testing.T) {
			interval, errNorm := NormalizeRow(
				&RawRow{
					Employee:  "BOB",
					Day:       day,
					StartTime: "10:00PM",
					EndTime:   "6:00AM",
				},
			)
			require.NoError(t, errNorm)

			require.Equal(t, int64(1320), interval.StartMinute)
			require.Equal(t, int64(1800), interval.EndMinute)
		},
	)

	t.Run(
		"4. zero-length shift rejected, not a 24-hour shift",
		func(t *testing.T) {
			interval, errNorm := NormalizeRow(
				&RawRow{
					Employee:  "ANA",
					Day:       day,
					StartTime: "09:00",
					EndTime:   "9:00AM",
				},
			)
			require.Error(t, errNorm)
			require.Nil(t, interval)

			var errMalformed ErrMalformedTime
			require.ErrorAs(t, errNorm, &errMalformed)
			require.Equal(t, "ANA", errMalformed.Employee)
		},
	)

	t.Run(
		"5. unparsable time",
		func(t *testing.T) {
			interval, errNorm := NormalizeRow(
				&RawRow{
					Employee:  "ANA",
					Day:       day,
					StartTime: "soonish",
					EndTime:   "17:00",
				},
			)
			require.Error(t, errNorm)
			require.Nil(t, interval)

			var errMalformed ErrMalformedTime
			require.ErrorAs(t, errNorm, &errMalformed)
			require.Equal(t, "soonish", errMalformed.Value)
		},
	)

	t.Run(
		"6. missing employee",
		func(t *testing.T) {
			interval, errNorm := NormalizeRow(
				&RawRow{
					Day:       day,
					StartTime: "09:00",
					EndTime:   "17:00",
				},
			)
			require.Error(t, errNorm)
			require.Nil(t, interval)

			var errMalformed ErrMalformedRow
			require.ErrorAs(t, errNorm, &errMalformed)
		},
	)

	t.Run(
		"7. missing day",
		func(t *testing.T) {
			interval, errNorm := NormalizeRow(
				&RawRow{
					Employee:  "ANA",
					StartTime: "09:00",
					EndTime:   "17:00",
				},
			)
			require.Error(t, errNorm)
			require.Nil(t, interval)
		},
	)

	t.Run(
		"8. nil row",
		func(t *testing.T) {
			interval, errNorm := NormalizeRow(nil)
			require.Error(t, errNorm)
			require.Nil(t, interval)
		},
	)
}

func TestNormalizeRowsPartialSuccess(t *testing.T) {
	intervals, rowErrors := NormalizeRows(
		[]RawRow{
			{Employee: "ANA", Day: day, StartTime: "09:00", EndTime: "17:00"},
			{Employee: "BOB", Day: day, StartTime: "bad", EndTime: "17:00"},
			{Employee: "CARLA", Day: day, StartTime: "22:00", EndTime: "06:00"},
		},
	)

	require.Len(t, intervals, 2)
	require.Equal(t, "ANA", intervals[0].Employee)
	require.Equal(t, "CARLA", intervals[1].Employee)

	require.Len(t, rowErrors, 1)

	var rowError RowError
	require.ErrorAs(t, rowErrors[0], &rowError)
	require.Equal(t, 2, rowError.RowNumber)

	var errMalformed ErrMalformedTime
	require.ErrorAs(t, rowError, &errMalformed)
}
