package shiftoverlap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeOverlap(t *testing.T) {
	tests := []struct {
		name          string
		shifts        []ShiftInterval
		expectedStart int64
		expectedEnd   int64
		expectExists  bool
	}{
		{
			name: "1. three morning shifts",
			shifts: []ShiftInterval{
				{Employee: "A", StartMinute: 540, EndMinute: 600},
				{Employee: "B", StartMinute: 560, EndMinute: 620},
				{Employee: "C", StartMinute: 550, EndMinute: 610},
			},
			expectedStart: 560,
			expectedEnd:   600,
			expectExists:  true,
		},
		{
			name: "2. disjoint shifts",
			shifts: []ShiftInterval{
				{Employee: "A", StartMinute: 540, EndMinute: 600},
				{Employee: "B", StartMinute: 700, EndMinute: 760},
			},
			expectExists: false,
		},
		{
			name: "3. overnight shifts",
			shifts: []ShiftInterval{
				{Employee: "A", StartMinute: 1320, EndMinute: 1800},
				{Employee: "B", StartMinute: 1380, EndMinute: 1740},
			},
			expectedStart: 1380,
			expectedEnd:   1740,
			expectExists:  true,
		},
		{
			name: "4. touching endpoints are not an overlap",
			shifts: []ShiftInterval{
				{Employee: "A", StartMinute: 540, EndMinute: 600},
				{Employee: "B", StartMinute: 600, EndMinute: 660},
			},
			expectExists: false,
		},
		{
			name:         "5. no shifts",
			shifts:       nil,
			expectExists: false,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				overlap := ComputeOverlap(tt.shifts)

				require.Equal(t, tt.expectExists, overlap.Exists())

				if !tt.expectExists {
					require.Zero(t, overlap.DurationMinutes())

					return
				}

				require.Equal(t, tt.expectedStart, overlap.OverlapStart)
				require.Equal(t, tt.expectedEnd, overlap.OverlapEnd)
				require.Positive(t, overlap.DurationHours())
			},
		)
	}
}

func TestOverlapDuration(t *testing.T) {
	overlap := Overlap{OverlapStart: 560, OverlapEnd: 600}
	require.InDelta(t, 0.6667, overlap.DurationHours(), 0.0001)

	overnight := Overlap{OverlapStart: 1380, OverlapEnd: 1740}
	require.InDelta(t, 6.0, overnight.DurationHours(), 0.0001)
}

func TestQueryOverlaps(t *testing.T) {
	ctx := context.Background()

	dayMissing := day.AddDate(0, 0, 1)
	dayDisjoint := day.AddDate(0, 0, 2)

	schedule := NewDaySchedule(
		[]ShiftInterval{
			mustInterval(t, "A", day, 540, 600),
			mustInterval(t, "B", day, 560, 620),
			mustInterval(t, "C", day, 550, 610),

			// C is off the next day
			mustInterval(t, "A", dayMissing, 540, 600),
			mustInterval(t, "B", dayMissing, 560, 620),

			mustInterval(t, "A", dayDisjoint, 540, 600),
			mustInterval(t, "B", dayDisjoint, 700, 760),
			mustInterval(t, "C", dayDisjoint, 540, 760),
		},
	)

	t.Run(
		"1. empty params",
		func(t *testing.T) {
			outcomes, errQuery := schedule.QueryOverlaps(
				ctx,
				&ParamsQueryOverlaps{},
			)
			require.Error(t, errQuery)
			require.Nil(t, outcomes)
		},
	)

	t.Run(
		"2. single distinct employee",
		func(t *testing.T) {
			outcomes, errQuery := schedule.QueryOverlaps(
				ctx,
				&ParamsQueryOverlaps{
					Employees: []string{"a", "A", " A "},
				},
			)
			require.Error(t, errQuery)
			require.Nil(t, outcomes)
		},
	)

	t.Run(
		"3. full selection across the three days",
		func(t *testing.T) {
			outcomes, errQuery := schedule.QueryOverlaps(
				ctx,
				&ParamsQueryOverlaps{
					Employees: []string{"A", "B", "C"},
				},
			)
			require.NoError(t, errQuery)
			require.Len(t, outcomes, 3)

			require.Equal(t, day, outcomes[0].Day)
			require.Equal(t, OutcomeOverlap, outcomes[0].Outcome)
			require.Equal(t, int64(560), outcomes[0].Overlap.OverlapStart)
			require.Equal(t, int64(600), outcomes[0].Overlap.OverlapEnd)

			require.Equal(t, dayMissing, outcomes[1].Day)
			require.Equal(t, OutcomeMissingSchedule, outcomes[1].Outcome)
			require.Equal(t, []string{"C"}, outcomes[1].MissingEmployees)
			require.False(t, outcomes[1].Overlap.Exists())

			require.Equal(t, dayDisjoint, outcomes[2].Day)
			require.Equal(t, OutcomeNoOverlap, outcomes[2].Outcome)
			require.False(t, outcomes[2].Overlap.Exists())
		},
	)

	t.Run(
		"4. selection names are normalized",
		func(t *testing.T) {
			outcomes, errQuery := schedule.QueryOverlaps(
				ctx,
				&ParamsQueryOverlaps{
					Employees: []string{" a ", "b", "B", "c"},
				},
			)
			require.NoError(t, errQuery)
			require.Len(t, outcomes, 3)
			require.Equal(t, OutcomeOverlap, outcomes[0].Outcome)
		},
	)
}

func TestDedupeEmployees(t *testing.T) {
	require.Equal(
		t,
		[]string{"ANA", "BOB"},
		DedupeEmployees([]string{" ana ", "ANA", "", "bob"}),
	)

	require.Empty(t, DedupeEmployees(nil))
}
