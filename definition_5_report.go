package shiftoverlap

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"time"
)

// ReportRow is one day with a genuine common window. DurationHours is the
// unrounded value and stays authoritative for comparisons; DisplayDuration
// rounds to two decimals for output only.
type ReportRow struct {
	Day     time.Time
	Overlap Overlap

	Window        string
	DurationHours float64
}

func (row *ReportRow) DisplayDay() string {
	return row.Day.Format("Mon 01/02/2006")
}

func (row *ReportRow) DisplayDuration() float64 {
	return math.Round(row.DurationHours*100) / 100
}

// CommonTime renders the window on the 12-hour clock, the form the source
// schedules use.
func (row *ReportRow) CommonTime() string {
	return fmt.Sprintf(
		"%s - %s",

		formatClockMinute12(row.Overlap.OverlapStart),
		formatClockMinute12(row.Overlap.OverlapEnd),
	)
}

// FormatWindow renders an overlap as wall-clock text, qualifying windows
// that reach past midnight with "(+1 day)".
func FormatWindow(overlap *Overlap) string {
	if !overlap.Exists() {
		return ""
	}

	text := fmt.Sprintf(
		"%s–%s",

		formatClockMinute(overlap.OverlapStart),
		formatClockMinute(overlap.OverlapEnd),
	)

	if overlap.OverlapEnd >= MinutesPerDay {
		return text + " (+1 day)"
	}

	return text
}

// BuildReport keeps only the days with a common window, ascending. Days with
// missing schedules or no overlap never reach the report.
func BuildReport(outcomes []DayOverlap) []ReportRow {
	var rows []ReportRow

	for ix := range outcomes {
		outcome := &outcomes[ix]

		if outcome.Outcome != OutcomeOverlap {
			continue
		}

		rows = append(
			rows,
			ReportRow{
				Day:     outcome.Day,
				Overlap: outcome.Overlap,

				Window:        FormatWindow(&outcome.Overlap),
				DurationHours: outcome.Overlap.DurationHours(),
			},
		)
	}

	sort.Slice(
		rows,
		func(i, j int) bool {
			return rows[i].Day.Before(rows[j].Day)
		},
	)

	return rows
}

// WriteCSV writes the report in the layout of the exported results file.
func WriteCSV(w io.Writer, rows []ReportRow) error {
	writer := csv.NewWriter(w)

	if errHeader := writer.Write(
		[]string{"Day/Date", "Common time", "Duration (hrs)"},
	); errHeader != nil {
		return errHeader
	}

	for ix := range rows {
		row := &rows[ix]

		if errRow := writer.Write(
			[]string{
				row.DisplayDay(),
				row.Window,
				fmt.Sprintf("%.2f", row.DisplayDuration()),
			},
		); errRow != nil {
			return errRow
		}
	}

	writer.Flush()

	return writer.Error()
}
