package shiftoverlap

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DaySchedule maps each calendar day to that day's shifts, one per employee.
// It is built once from normalized intervals and read-only afterwards, so the
// same value can answer any number of selection queries.
type DaySchedule struct {
	days    map[time.Time]map[string]ShiftInterval
	dropped []DroppedShift
}

// DroppedShift records a (day, employee) pair excluded because the employee
// had more than one shift that day. At most one shift per employee per day is
// supported; duplicates are a data-quality skip, never a merge.
type DroppedShift struct {
	Day      time.Time
	Employee string
}

func NewDaySchedule(intervals []ShiftInterval) *DaySchedule {
	result := DaySchedule{
		days: make(map[time.Time]map[string]ShiftInterval),
	}

	tainted := make(map[DroppedShift]bool)

	for ix := range intervals {
		interval := intervals[ix]

		day := DayOf(interval.Day)

		perEmployee, exists := result.days[day]
		if !exists {
			perEmployee = make(map[string]ShiftInterval)
			result.days[day] = perEmployee
		}

		key := DroppedShift{
			Day:      day,
			Employee: interval.Employee,
		}

		if tainted[key] {
			continue
		}

		if _, duplicate := perEmployee[interval.Employee]; duplicate {
			delete(perEmployee, interval.Employee)

			tainted[key] = true

			result.dropped = append(result.dropped, key)

			continue
		}

		perEmployee[interval.Employee] = interval
	}

	return &result
}

// Days returns the schedule's days ascending.
func (schedule *DaySchedule) Days() []time.Time {
	result := make([]time.Time, 0, len(schedule.days))

	for day := range schedule.days {
		result = append(result, day)
	}

	sort.Slice(
		result,
		func(i, j int) bool {
			return result[i].Before(result[j])
		},
	)

	return result
}

// Employees returns every employee seen in the schedule, sorted.
func (schedule *DaySchedule) Employees() []string {
	seen := make(map[string]bool)

	for _, perEmployee := range schedule.days {
		for employee := range perEmployee {
			seen[employee] = true
		}
	}

	result := make([]string, 0, len(seen))

	for employee := range seen {
		result = append(result, employee)
	}

	sort.Strings(result)

	return result
}

func (schedule *DaySchedule) ShiftCount() int {
	var count int

	for _, perEmployee := range schedule.days {
		count = count + len(perEmployee)
	}

	return count
}

// Dropped returns the (day, employee) pairs excluded for duplicate shifts,
// for diagnostics.
func (schedule *DaySchedule) Dropped() []DroppedShift {
	return schedule.dropped
}

// DayShifts returns the selected employees' shifts for one day plus the
// employees with no usable shift that day. The day qualifies for overlap
// computation only when the second slice is empty.
func (schedule *DaySchedule) DayShifts(day time.Time, employees []string) ([]ShiftInterval, []string) {
	perEmployee := schedule.days[DayOf(day)]

	var shifts []ShiftInterval
	var missing []string

	for _, employee := range employees {
		interval, exists := perEmployee[employee]
		if !exists {
			missing = append(missing, employee)

			continue
		}

		shifts = append(shifts, interval)
	}

	return shifts, missing
}

func (schedule *DaySchedule) String() string {
	if len(schedule.days) == 0 {
		return "DaySchedule: (empty)"
	}

	var sb strings.Builder

	sb.WriteString("DaySchedule:\n")

	for _, day := range schedule.Days() {
		perEmployee := schedule.days[day]

		employees := make([]string, 0, len(perEmployee))
		for employee := range perEmployee {
			employees = append(employees, employee)
		}

		sort.Strings(employees)

		for _, employee := range employees {
			interval := perEmployee[employee]

			sb.WriteString(
				fmt.Sprintf(
					"- %s\n",
					interval.String(),
				),
			)
		}
	}

	return sb.String()
}
