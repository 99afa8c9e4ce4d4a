package cycle

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Rotation constants. A cycle is a fixed 18-day block; the target is the
// contracted hours for one block.
const (
	CycleDays         = 18
	TargetHours       = 123.6
	RegularShiftHours = 24.72
	LeaveHours        = 8.24
	AverageDailyHours = TargetHours / CycleDays
)

// EntryType classifies one day of a cycle.
type EntryType int

const (
	OffDay EntryType = iota
	RegularShift
	LeavePaidVL
	LeaveHoliday
	CourseTraining
	TransferredOut
	TimeOffDeduction
	Custom
)

// Kind describes an entry type for help output and alias resolution.
type Kind struct {
	Type    EntryType
	Code    string
	Aliases []string
	Meaning string
}

// Kinds returns the closed set of entry types. The Code is the stored wire
// form and must not change; aliases are accepted on the command line.
func Kinds() []Kind {
	return []Kind{
		{OffDay, "OFF_DAY", []string{"off", "rest"}, "off day, no hours"},
		{RegularShift, "REGULAR_SHIFT", []string{"work", "shift"}, fmt.Sprintf("regular shift, %.2f hrs", RegularShiftHours)},
		{LeavePaidVL, "LEAVE_VL", []string{"vl", "leave"}, fmt.Sprintf("paid vacation leave, %.2f hrs", LeaveHours)},
		{LeaveHoliday, "LEAVE_HOLIDAY", []string{"hl", "holiday"}, fmt.Sprintf("holiday leave, %.2f hrs", LeaveHours)},
		{CourseTraining, "COURSE_TRAINING", []string{"course", "training"}, "training day, reduces the cycle target"},
		{TransferredOut, "TRANSFERRED_OUT", []string{"transfer", "redeployed"}, "redeployed day, reduces the cycle target"},
		{TimeOffDeduction, "TIME_OFF", []string{"to", "timeoff"}, "worked day with hours deducted"},
		{Custom, "CUSTOM", []string{"custom"}, "user defined hours"},
	}
}

// Kind returns the descriptor for t.
func (t EntryType) Kind() Kind {
	for _, k := range Kinds() {
		if k.Type == t {
			return k
		}
	}
	return Kind{Type: t, Code: "UNKNOWN"}
}

func (t EntryType) String() string {
	return t.Kind().Code
}

// TypeForAlias resolves a command line name (code or alias, any case) to an
// entry type.
func TypeForAlias(s string) (EntryType, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if strings.ToLower(k.Code) == needle {
			return k.Type, nil
		}
		for _, a := range k.Aliases {
			if a == needle {
				return k.Type, nil
			}
		}
	}
	return OffDay, fmt.Errorf("unknown entry type %q", s)
}

// MarshalJSON writes the stable wire code.
func (t EntryType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Kind().Code)
}

// UnmarshalJSON accepts only known wire codes; anything else is a decode
// error so a corrupted record surfaces as malformed instead of silently
// becoming an off day.
func (t *EntryType) UnmarshalJSON(b []byte) error {
	var code string
	if err := json.Unmarshal(b, &code); err != nil {
		return err
	}
	for _, k := range Kinds() {
		if k.Code == code {
			*t = k.Type
			return nil
		}
	}
	return fmt.Errorf("unknown entry type code %q", code)
}

// DayEntry is one calendar slot within a cycle. DayID is the 1-based
// position and is stable identity; CustomHours carries a type dependent
// meaning (hours worked for CUSTOM, hours deducted for TIME_OFF, target
// reduction override for COURSE_TRAINING and TRANSFERRED_OUT).
type DayEntry struct {
	DayID          int       `json:"dayId"`
	Type           EntryType `json:"type"`
	CustomHours    float64   `json:"customHours"`
	Note           string    `json:"note"`
	CourseName     string    `json:"courseName,omitempty"`
	CourseLocation string    `json:"courseLocation,omitempty"`
	StartTime      string    `json:"startTime,omitempty"`
	EndTime        string    `json:"endTime,omitempty"`
	BreakMinutes   *int      `json:"breakMinutes,omitempty"`
}

// EmptyCycle returns the default record: a full cycle of off days.
func EmptyCycle() []DayEntry {
	days := make([]DayEntry, CycleDays)
	for i := range days {
		days[i] = DayEntry{DayID: i + 1, Type: OffDay}
	}
	return days
}

// Valid reports whether days is a well formed cycle: exactly CycleDays
// entries with DayID 1..CycleDays in ascending order.
func Valid(days []DayEntry) bool {
	if len(days) != CycleDays {
		return false
	}
	for i, d := range days {
		if d.DayID != i+1 {
			return false
		}
	}
	return true
}
