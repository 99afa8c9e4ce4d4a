package cycle

// Stats is the derived summary of one cycle against its target. It is
// recomputed on demand and never cached across entry mutations.
type Stats struct {
	TotalWorked     float64
	TrainingDays    int
	TransferredDays int
	AdjustedTarget  float64
	NetBalance      float64
}

// ComputeStats folds a cycle's entries and an incoming balance into worked
// hours, an adjusted target and the net balance. Pure; order of entries
// does not affect the result.
func ComputeStats(days []DayEntry, startBalance float64) Stats {
	var worked, targetReduction float64
	var trainingDays, transferredDays int

	for _, d := range days {
		switch d.Type {
		case RegularShift:
			worked += RegularShiftHours
		case OffDay:
			// no hours
		case LeavePaidVL, LeaveHoliday:
			worked += LeaveHours
		case Custom:
			worked += d.CustomHours
		case TimeOffDeduction:
			// A worked day with a partial absence. CustomHours is the
			// deduction, clamped so the day never goes negative.
			net := RegularShiftHours - d.CustomHours
			if net < 0 {
				net = 0
			}
			worked += net
		case CourseTraining:
			trainingDays++
			targetReduction += reductionFor(d)
		case TransferredOut:
			transferredDays++
			targetReduction += reductionFor(d)
		}
	}

	adjustedTarget := TargetHours - targetReduction
	if adjustedTarget < 0 {
		adjustedTarget = 0
	}

	return Stats{
		TotalWorked:     worked,
		TrainingDays:    trainingDays,
		TransferredDays: transferredDays,
		AdjustedTarget:  adjustedTarget,
		NetBalance:      (worked + startBalance) - adjustedTarget,
	}
}

// reductionFor returns the target reduction for a training or transfer
// day: the entry's own hours when set, otherwise one average day.
func reductionFor(d DayEntry) float64 {
	if d.CustomHours > 0 {
		return d.CustomHours
	}
	return AverageDailyHours
}
