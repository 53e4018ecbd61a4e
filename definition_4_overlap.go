package shiftoverlap

import (
	"context"
	"errors"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Overlap is the common window of a set of shifts on the shared minute
// timeline of one day. Equal start and end means no common window.
type Overlap struct {
	OverlapStart int64
	OverlapEnd   int64
}

func (o *Overlap) Exists() bool {
	return o.OverlapStart < o.OverlapEnd
}

func (o *Overlap) DurationMinutes() int64 {
	return ternary(o.Exists(), o.OverlapEnd-o.OverlapStart, 0)
}

func (o *Overlap) DurationHours() float64 {
	return float64(o.DurationMinutes()) / MinutesPerHour
}

// ComputeOverlap reduces the shifts to [max(starts), min(ends)). The result
// is exact for any number of shifts because every end minute already lives on
// the overnight-adjusted timeline of the same day.
func ComputeOverlap(shifts []ShiftInterval) *Overlap {
	if len(shifts) == 0 {
		return &Overlap{}
	}

	overlapStart := shifts[0].StartMinute
	overlapEnd := shifts[0].EndMinute

	for _, shift := range shifts[1:] {
		overlapStart = max(overlapStart, shift.StartMinute)
		overlapEnd = min(overlapEnd, shift.EndMinute)
	}

	if overlapStart >= overlapEnd {
		return &Overlap{}
	}

	return &Overlap{
		OverlapStart: overlapStart,
		OverlapEnd:   overlapEnd,
	}
}

type DayOutcome uint8

const (
	// OutcomeOverlap - every selected employee works that day and a common
	// window exists.
	OutcomeOverlap DayOutcome = iota + 1

	// OutcomeNoOverlap - every selected employee works that day but there is
	// no common window.
	OutcomeNoOverlap

	// OutcomeMissingSchedule - at least one selected employee has no usable
	// shift that day, so the day carries insufficient data.
	OutcomeMissingSchedule
)

type DayOverlap struct {
	Day     time.Time
	Overlap Overlap

	MissingEmployees []string

	Outcome DayOutcome
}

type ParamsQueryOverlaps struct {
	Employees []string `valid:"required"`
}

// MinimumSelection is the product rule for overlap queries. The engine
// computes for two employees just the same, callers surface the rule.
const MinimumSelection = 3

// QueryOverlaps evaluates the selection against every day of the schedule
// and returns one outcome per day, ascending. Selected names are normalized
// and de-duplicated first; at least two distinct names are required.
func (schedule *DaySchedule) QueryOverlaps(_ context.Context, params *ParamsQueryOverlaps) ([]DayOverlap, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "ShiftOverlap",
				Caller:      "QueryOverlaps",
				Issue:       errValidation,
			}
	}

	employees := DedupeEmployees(params.Employees)

	if len(employees) < 2 {
		return nil,
			goerrors.ErrValidation{
				Caller: "QueryOverlaps",
				Issue: errors.New(
					"need at least two distinct employees",
				),
			}
	}

	var results []DayOverlap

	for _, day := range schedule.Days() {
		shifts, missing := schedule.DayShifts(day, employees)

		if len(missing) > 0 {
			results = append(
				results,
				DayOverlap{
					Day:              day,
					MissingEmployees: missing,
					Outcome:          OutcomeMissingSchedule,
				},
			)

			continue
		}

		overlap := ComputeOverlap(shifts)

		results = append(
			results,
			DayOverlap{
				Day:     day,
				Overlap: *overlap,
				Outcome: ternary(overlap.Exists(), OutcomeOverlap, OutcomeNoOverlap),
			},
		)
	}

	return results, nil
}

// DedupeEmployees normalizes the names and drops blanks and repeats, keeping
// first-occurrence order.
func DedupeEmployees(names []string) []string {
	seen := make(map[string]bool)

	var result []string

	for _, name := range names {
		normalized := NormalizeEmployeeName(name)

		if len(normalized) == 0 || seen[normalized] {
			continue
		}

		seen[normalized] = true

		result = append(result, normalized)
	}

	return result
}
