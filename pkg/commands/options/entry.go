package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions carries the per-day field flags shared by set and apply.
type EntryOptions struct {
	Day            int
	Hours          float64
	Note           string
	CourseName     string
	CourseLocation string
	StartTime      string
	EndTime        string
	BreakMinutes   int
}

// AddDayArg wires the day-in-cycle selector.
func AddDayArg(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().IntVarP(&o.Day, "day", "d", 0,
		"Day within the cycle, 1..18.")
	_ = cmd.MarkFlagRequired("day")
}

// AddEntryArgs wires the entry field flags.
func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().Float64Var(&o.Hours, "hours", 0,
		"Hours value; meaning depends on the entry type (worked for custom, deducted for time off, target reduction for course or transfer).")
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Free text note for the day.")
	cmd.Flags().StringVar(&o.CourseName, "course", "",
		"Course name, for training entries.")
	cmd.Flags().StringVar(&o.CourseLocation, "location", "",
		"Course location, for training entries.")
	cmd.Flags().StringVar(&o.StartTime, "start", "",
		`Start time, example: --start="09:00". Used to derive hours when --hours is not given.`)
	cmd.Flags().StringVar(&o.EndTime, "end", "",
		`End time, example: --end="17:30".`)
	cmd.Flags().IntVar(&o.BreakMinutes, "break", 0,
		"Break minutes subtracted from the derived hours.")
}

// GetHours returns the hours value, or nil when the flag was not given.
func (o *EntryOptions) GetHours(cmd *cobra.Command) *float64 {
	if !cmd.Flags().Changed("hours") {
		return nil
	}
	h := o.Hours
	return &h
}

// GetBreak returns the break minutes, or nil when the flag was not given.
// A deliberate --break=0 is distinct from leaving it unset.
func (o *EntryOptions) GetBreak(cmd *cobra.Command) *int {
	if !cmd.Flags().Changed("break") {
		return nil
	}
	b := o.BreakMinutes
	return &b
}
