package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/shiftcycle/pkg/cycle"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Calendar prints one cycle as a day-by-day table.
func (pp *PrettyPrint) Calendar(days []cycle.DayEntry, cycleStart time.Time) {
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("Day"), bold.Sprint("Date"), bold.Sprint("Type"), bold.Sprint("Hours"), bold.Sprint("Note"))

	for _, d := range days {
		date := cycleStart.AddDate(0, 0, d.DayID-1)
		tbl.AddRow(d.DayID, date.Format("Mon Jan 02"), d.Type.String(), pp.hours(d), d.Note)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// hours renders the hours column for one entry.
func (pp *PrettyPrint) hours(d cycle.DayEntry) string {
	switch d.Type {
	case cycle.RegularShift:
		return fmt.Sprintf("%.2f", cycle.RegularShiftHours)
	case cycle.LeavePaidVL, cycle.LeaveHoliday:
		return fmt.Sprintf("%.2f", cycle.LeaveHours)
	case cycle.Custom:
		return fmt.Sprintf("%.2f", d.CustomHours)
	case cycle.TimeOffDeduction:
		return fmt.Sprintf("-%.2f", d.CustomHours)
	case cycle.CourseTraining, cycle.TransferredOut:
		if d.CustomHours > 0 {
			return fmt.Sprintf("(%.2f)", d.CustomHours)
		}
		return fmt.Sprintf("(%.2f)", cycle.AverageDailyHours)
	default:
		return "-"
	}
}

// Stats prints the cycle summary with the balance colored by sign.
func (pp *PrettyPrint) Stats(s cycle.Stats, previousBalance float64, linked bool) {
	tbl := uitable.New()
	tbl.Separator = "  "

	carried := fmt.Sprintf("%.2f", previousBalance)
	if linked {
		carried += " (linked)"
	}
	tbl.AddRow("Carried over:", carried)
	tbl.AddRow("Worked:", fmt.Sprintf("%.2f", s.TotalWorked))
	tbl.AddRow("Target:", fmt.Sprintf("%.2f", s.AdjustedTarget))
	if s.TrainingDays > 0 {
		tbl.AddRow("Training days:", s.TrainingDays)
	}
	if s.TransferredDays > 0 {
		tbl.AddRow("Transferred days:", s.TransferredDays)
	}

	balance := color.New(color.FgGreen)
	if s.NetBalance < 0 {
		balance = color.New(color.FgRed)
	}
	tbl.AddRow("Balance:", balance.Sprintf("%+.2f", s.NetBalance))

	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Key prints the entry type table for the key command.
func (pp *PrettyPrint) Key(kinds []cycle.Kind) {
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("Type"), bold.Sprint("Aliases"), bold.Sprint("Meaning"))
	for _, k := range kinds {
		tbl.AddRow(k.Code, strings.Join(k.Aliases, ", "), k.Meaning)
	}

	pp.Title("\nEntry types")
	_, _ = fmt.Fprintln(color.Output, tbl)
}
