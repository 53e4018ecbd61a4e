package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TudorHulban/shiftoverlap"
)

// Version is set at build time.
var Version = "dev"

type app struct {
	config *Config
	root   *cobra.Command

	input     string
	employees []string
	csvPath   string
	verbose   bool
}

func newApp(cfg *Config) *app {
	a := &app{config: cfg}

	a.root = &cobra.Command{
		Use:   "shiftoverlap",
		Short: "Find the days and times selected employees are on shift together",
		Long: `Shiftoverlap reads a weekly schedule extracted to plain text, picks the
shifts of the selected employees, and reports, per day, the common window
during which all of them are on shift - overnight shifts included.`,
		RunE: a.runOverlap,

		SilenceUsage: true,
	}

	a.root.PersistentFlags().StringVarP(&a.input, "input", "i", "", "schedule text file (extracted from the source document)")

	a.root.Flags().StringArrayVarP(&a.employees, "employee", "e", nil, "employee to include (repeat, minimum 3)")
	a.root.Flags().StringVar(&a.csvPath, "csv", "", "also write the results as CSV to this path")
	a.root.Flags().BoolVarP(&a.verbose, "verbose", "v", false, "explain skipped rows and days")

	a.root.AddCommand(a.employeesCmd())
	a.root.AddCommand(a.shiftsCmd())
	a.root.AddCommand(a.versionCmd())

	return a
}

func (a *app) Execute() error {
	return a.root.Execute()
}

// loadSchedule reads and extracts the input file, normalizes the rows, and
// reports skipped rows without failing the run.
func (a *app) loadSchedule() (*shiftoverlap.DaySchedule, *shiftoverlap.ExtractionSummary, error) {
	path := a.input
	if len(path) == 0 {
		path = a.config.Input
	}

	if len(path) == 0 {
		return nil, nil,
			fmt.Errorf("no input schedule: pass --input or set it in the config file")
	}

	data, errRead := os.ReadFile(path)
	if errRead != nil {
		return nil, nil, errRead
	}

	rows, summary := shiftoverlap.ExtractRows(string(data))
	if len(rows) == 0 {
		return nil, nil,
			fmt.Errorf("no shifts detected in %s", path)
	}

	intervals, rowErrors := shiftoverlap.NormalizeRows(rows)

	for _, rowError := range rowErrors {
		color.Yellow("skipping %v", rowError)
	}

	return shiftoverlap.NewDaySchedule(intervals), summary, nil
}

func (a *app) selection() []string {
	if len(a.employees) > 0 {
		return a.employees
	}

	return a.config.Employees
}

func (a *app) runOverlap(cmd *cobra.Command, _ []string) error {
	schedule, summary, errLoad := a.loadSchedule()
	if errLoad != nil {
		return errLoad
	}

	selected := shiftoverlap.DedupeEmployees(a.selection())

	if len(selected) < shiftoverlap.MinimumSelection {
		return fmt.Errorf(
			"select at least %d distinct employees with --employee (got %d)",
			shiftoverlap.MinimumSelection,
			len(selected),
		)
	}

	outcomes, errQuery := schedule.QueryOverlaps(
		cmd.Context(),
		&shiftoverlap.ParamsQueryOverlaps{
			Employees: selected,
		},
	)
	if errQuery != nil {
		return errQuery
	}

	if a.verbose {
		fmt.Printf(
			"shifts read: %d | days: %d | employees: %d\n\n",
			summary.ShiftsRead,
			summary.Days,
			summary.Employees,
		)

		a.explainSkips(outcomes)
	}

	rows := shiftoverlap.BuildReport(outcomes)

	if len(rows) == 0 {
		color.Yellow("No days found where ALL selected employees overlap.")

		return nil
	}

	bold := color.New(color.Bold)
	bold.Printf("%-16s %-24s %-22s %s\n", "Day/Date", "Window", "Common time", "Duration (hrs)")

	for ix := range rows {
		row := &rows[ix]

		fmt.Printf(
			"%-16s %-24s %-22s %.2f\n",
			row.DisplayDay(),
			row.Window,
			row.CommonTime(),
			row.DisplayDuration(),
		)
	}

	if len(a.csvPath) == 0 {
		a.csvPath = a.config.CSV
	}

	if len(a.csvPath) > 0 {
		if errExport := a.exportCSV(rows); errExport != nil {
			return errExport
		}

		fmt.Printf("\nwrote %s\n", a.csvPath)
	}

	return nil
}

func (a *app) explainSkips(outcomes []shiftoverlap.DayOverlap) {
	for ix := range outcomes {
		outcome := &outcomes[ix]

		switch outcome.Outcome {
		case shiftoverlap.OutcomeMissingSchedule:
			color.Yellow(
				"%s: skipped, no usable shift for %v",
				outcome.Day.Format("Mon 01/02/2006"),
				outcome.MissingEmployees,
			)

		case shiftoverlap.OutcomeNoOverlap:
			color.Yellow(
				"%s: all selected employees work, no common window",
				outcome.Day.Format("Mon 01/02/2006"),
			)
		}
	}
}

func (a *app) exportCSV(rows []shiftoverlap.ReportRow) error {
	file, errCreate := os.Create(a.csvPath)
	if errCreate != nil {
		return errCreate
	}
	defer file.Close()

	return shiftoverlap.WriteCSV(file, rows)
}

func (a *app) employeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "List the employees found in the schedule",
		RunE: func(_ *cobra.Command, _ []string) error {
			schedule, _, errLoad := a.loadSchedule()
			if errLoad != nil {
				return errLoad
			}

			for _, employee := range schedule.Employees() {
				fmt.Println(employee)
			}

			return nil
		},
	}
}

func (a *app) shiftsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shifts",
		Short: "List the shifts detected in the schedule (debug)",
		RunE: func(_ *cobra.Command, _ []string) error {
			schedule, summary, errLoad := a.loadSchedule()
			if errLoad != nil {
				return errLoad
			}

			fmt.Print(schedule)

			for _, dropped := range schedule.Dropped() {
				color.Yellow(
					"dropped %s on %s: more than one shift that day",
					dropped.Employee,
					dropped.Day.Format("Mon 01/02/2006"),
				)
			}

			fmt.Printf(
				"\nshifts read: %d | days: %d | employees: %d\n",
				summary.ShiftsRead,
				summary.Days,
				summary.Employees,
			)

			return nil
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(Version)
		},
	}
}
