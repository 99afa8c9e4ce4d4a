// Package report renders a cycle's stats as a human readable markdown
// balance report, including the formal statement wording used for
// training and redeployment irregularities.
package report

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/shiftcycle/pkg/cycle"
)

// Input is everything the report needs; it is purely downstream of the
// stats calculator.
type Input struct {
	Days            []cycle.DayEntry
	Stats           cycle.Stats
	PreviousBalance float64
	StaffNumber     string
	CycleStart      time.Time
	CycleEnd        time.Time
}

const layoutReport = "02/01/2006"

// Generate builds the markdown report.
func Generate(in Input) string {
	staff := in.StaffNumber
	if staff == "" {
		staff = "[Staff No.]"
	}
	startStr := in.CycleStart.Format(layoutReport)
	endStr := in.CycleEnd.Format(layoutReport)

	var b strings.Builder
	b.WriteString("### Balance Report\n")
	fmt.Fprintf(&b, "**Cycle:** %s — %s\n", startStr, endStr)
	fmt.Fprintf(&b, "**Staff:** %s\n\n", staff)
	b.WriteString("**Stats:**\n")
	fmt.Fprintf(&b, "- Target: %.2fh\n", in.Stats.AdjustedTarget)
	fmt.Fprintf(&b, "- Worked: %.2fh\n", in.Stats.TotalWorked)
	fmt.Fprintf(&b, "- Carried over: %.2fh\n", in.PreviousBalance)
	fmt.Fprintf(&b, "- Balance: %.2fh\n", in.Stats.NetBalance)
	b.WriteString("\n---\n### Formal Statement\n")
	fmt.Fprintf(&b, "> %s\n", statement(in, staff, startStr, endStr))
	b.WriteString("\n---\n### Event Log\n")
	b.WriteString(eventLog(in))
	return b.String()
}

// statement picks the formal wording: training and redeployment cycles
// each have deficit and surplus variants, everything else gets the plain
// summary line.
func statement(in Input, staff, startStr, endStr string) string {
	deficit := in.Stats.NetBalance < 0

	if in.Stats.TrainingDays > 0 {
		courseName, trainingStart, trainingEnd := trainingDetails(in)
		if deficit {
			return fmt.Sprintf("%s took [V/L or Holiday] on [Date of Leave] to balance insufficient work hours in cycle %s to %s of attendance %s from/on %s to %s.",
				staff, startStr, endStr, courseName, trainingStart, trainingEnd)
		}
		return fmt.Sprintf("%s took time off lieu from [Time] to [Time] on [Date of OIL] due to surplus working hours in cycle %s to %s of attendance %s from/on %s to %s.",
			staff, startStr, endStr, courseName, trainingStart, trainingEnd)
	}

	if in.Stats.TransferredDays > 0 {
		transfer := transferDate(in)
		if deficit {
			return fmt.Sprintf("%s took [V/L or Holiday] on [Date of Leave] to balance insufficient work hours in cycle %s to %s due to redeployment to other team on %s.",
				staff, startStr, endStr, transfer)
		}
		return fmt.Sprintf("%s took time off lieu from [Time] to [Time] on [Date of OIL] due to surplus working hours in cycle %s to %s prior to redeployment to other team on %s.",
			staff, startStr, endStr, transfer)
	}

	status := "surplus"
	v := in.Stats.NetBalance
	if deficit {
		status = "deficit"
		v = -v
	}
	return fmt.Sprintf("Work hours report for cycle %s to %s: Staff %s has a net %s of %.2f hours.",
		startStr, endStr, staff, status, v)
}

// trainingDetails finds the course name and the span of training days.
func trainingDetails(in Input) (name, start, end string) {
	name = "Unspecified Course"
	first, last := 0, 0
	for _, d := range in.Days {
		if d.Type != cycle.CourseTraining {
			continue
		}
		if first == 0 || d.DayID < first {
			first = d.DayID
		}
		if d.DayID > last {
			last = d.DayID
		}
		if name == "Unspecified Course" && strings.TrimSpace(d.CourseName) != "" {
			name = d.CourseName
		}
	}
	if first == 0 {
		return name, "", ""
	}
	start = in.CycleStart.AddDate(0, 0, first-1).Format(layoutReport)
	end = in.CycleStart.AddDate(0, 0, last-1).Format(layoutReport)
	return name, start, end
}

// transferDate is the last working day before the first redeployed day.
func transferDate(in Input) string {
	for _, d := range in.Days {
		if d.Type == cycle.TransferredOut {
			lastWorking := d.DayID - 1
			if lastWorking < 1 {
				lastWorking = 1
			}
			return in.CycleStart.AddDate(0, 0, lastWorking-1).Format(layoutReport)
		}
	}
	return "[Last Working Day]"
}

// eventLog lists every day that was neither a regular shift nor an off
// day.
func eventLog(in Input) string {
	var lines []string
	for _, d := range in.Days {
		if d.Type == cycle.RegularShift || d.Type == cycle.OffDay {
			continue
		}
		date := in.CycleStart.AddDate(0, 0, d.DayID-1).Format(layoutReport)
		line := fmt.Sprintf("- **Day %d** (%s): %s", d.DayID, date, d.Type)
		switch d.Type {
		case cycle.Custom:
			line += fmt.Sprintf(" (%ghrs)", d.CustomHours)
		case cycle.CourseTraining:
			name := d.CourseName
			if name == "" {
				name = "Unspecified"
			}
			line += fmt.Sprintf(" [Course: %s]", name)
			if d.StartTime != "" && d.EndTime != "" {
				line += fmt.Sprintf(" %s-%s", d.StartTime, d.EndTime)
			}
		case cycle.TimeOffDeduction:
			line += fmt.Sprintf(" (Deduction: %ghrs)", d.CustomHours)
			if d.StartTime != "" && d.EndTime != "" {
				line += fmt.Sprintf(" %s-%s", d.StartTime, d.EndTime)
			}
		}
		if d.Note != "" {
			line += " - Note: " + d.Note
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return "No irregularities recorded.\n"
	}
	return strings.Join(lines, "\n") + "\n"
}
