package shiftoverlap

import (
	"regexp"
	"strings"
	"time"
)

// The extraction collaborator hands over plain text: date header lines
// ("Tuesday, March 3, 2026") followed by lines holding an employee name and
// shift tokens ("7:00AM-3:30PM"). Only the first token of a line is the
// shift; meal and skill tokens after it are ignored.

var (
	dateLinePattern = regexp.MustCompile(
		`^(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday),\s+[A-Za-z]+\s+\d{1,2},\s+\d{4}$`,
	)

	shiftTokenPattern = regexp.MustCompile(
		`\+?\d{1,2}:\d{2}[AP]M-\d{1,2}:\d{2}[AP]M\+?`,
	)
)

const dateHeaderLayout = "Monday, January 2, 2006"

// Column headers that precede shift tokens without naming a person.
var nonPersonHeaders = map[string]bool{
	"NAME":       true,
	"ASSOCIATE":  true,
	"SPECIALIST": true,
	"LEAD":       true,
	"RECOVERY":   true,
	"COVERAGE":   true,
}

type ExtractionSummary struct {
	ShiftsRead int
	Days       int
	Employees  int
}

// ExtractRows scans extracted schedule text into raw rows. A date header
// sets the current day; lines before any header or without a shift token are
// skipped.
func ExtractRows(text string) ([]RawRow, *ExtractionSummary) {
	var rows []RawRow
	var currentDay time.Time

	seenDays := make(map[time.Time]bool)
	seenEmployees := make(map[string]bool)

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if len(line) == 0 {
			continue
		}

		if dateLinePattern.MatchString(line) {
			parsed, errParse := time.Parse(dateHeaderLayout, line)
			if errParse == nil {
				currentDay = DayOf(parsed)
			}

			continue
		}

		if currentDay.IsZero() {
			continue
		}

		tokenLocation := shiftTokenPattern.FindStringIndex(line)
		if tokenLocation == nil {
			continue
		}

		employee := NormalizeEmployeeName(line[:tokenLocation[0]])
		if len(employee) == 0 || nonPersonHeaders[employee] {
			continue
		}

		token := strings.ReplaceAll(
			line[tokenLocation[0]:tokenLocation[1]],
			"+",
			"",
		)

		clockTexts := strings.SplitN(token, "-", 2)

		rows = append(
			rows,
			RawRow{
				Employee:  employee,
				Day:       currentDay,
				StartTime: clockTexts[0],
				EndTime:   clockTexts[1],
			},
		)

		seenDays[currentDay] = true
		seenEmployees[employee] = true
	}

	return rows,
		&ExtractionSummary{
			ShiftsRead: len(rows),
			Days:       len(seenDays),
			Employees:  len(seenEmployees),
		}
}
