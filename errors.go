package shiftoverlap

import "fmt"

// ErrMalformedTime reports a clock-time field that could not be parsed, or a
// shift whose start and end coincide (ambiguous between zero-length and a
// full day, rejected rather than guessed).
type ErrMalformedTime struct {
	Employee string
	Value    string
	Issue    error
}

func (e ErrMalformedTime) Error() string {
	return fmt.Sprintf(
		"malformed time %q for employee %q: %v",

		e.Value,
		e.Employee,
		e.Issue,
	)
}

func (e ErrMalformedTime) Unwrap() error {
	return e.Issue
}

// ErrMalformedRow reports a raw row missing a required field.
type ErrMalformedRow struct {
	Issue error
}

func (e ErrMalformedRow) Error() string {
	return fmt.Sprintf(
		"malformed row: %v",
		e.Issue,
	)
}

func (e ErrMalformedRow) Unwrap() error {
	return e.Issue
}

// RowError ties a normalization failure to the position of the raw row that
// caused it, so partial results can be reported next to their skipped rows.
type RowError struct {
	RowNumber int
	Issue     error
}

func (e RowError) Error() string {
	return fmt.Sprintf(
		"row %d: %v",

		e.RowNumber,
		e.Issue,
	)
}

func (e RowError) Unwrap() error {
	return e.Issue
}
