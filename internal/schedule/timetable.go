package schedule

import (
	"fmt"
	"time"
)

// shiftBaseHour maps a shift letter to the hour its slot numbering starts
// from: slot h in shift s runs from (base+h):00 to (base+h+1):00, so M2 is
// 08:00-09:00 and N1 is 19:00-20:00.
var shiftBaseHour = map[string]int{
	"E": 0,
	"M": 6,
	"T": 12,
	"N": 18,
}

// shiftNames maps shift letters to display names.
var shiftNames = map[string]string{
	"E": "Dawn",
	"M": "Morning",
	"T": "Afternoon",
	"N": "Night",
}

// dayNames maps the feed's 1-7 Sunday-first day numbers to display names.
var dayNames = map[int]string{
	1: "Sunday",
	2: "Monday",
	3: "Tuesday",
	4: "Wednesday",
	5: "Thursday",
	6: "Friday",
	7: "Saturday",
}

// TimeRange is one teaching period as wall-clock times.
type TimeRange struct {
	Start string `json:"start"` // "HH:00"
	End   string `json:"end"`   // "HH:00"
}

// Meeting is one concrete occurrence of a scheduled class: a day of the
// week plus the time range of a single hour slot.
type Meeting struct {
	Day       int       `json:"day"` // 1-7, Sunday=1
	DayName   string    `json:"dayName"`
	Shift     string    `json:"shift"`
	ShiftName string    `json:"shiftName"`
	Slot      int       `json:"slot"`
	Time      TimeRange `json:"time"`
}

// SlotRange converts a shift letter and hour slot into its time range.
// Unknown shifts are an error: without a base hour there is no range.
func SlotRange(shift string, slot int) (TimeRange, error) {
	base, ok := shiftBaseHour[shift]
	if !ok {
		return TimeRange{}, fmt.Errorf("unknown shift %q", shift)
	}
	return TimeRange{
		Start: fmt.Sprintf("%02d:00", base+slot),
		End:   fmt.Sprintf("%02d:00", base+slot+1),
	}, nil
}

// DayName returns the display name for a 1-7 day number, or "" when the
// number is out of range.
func DayName(day int) string {
	return dayNames[day]
}

// ShiftName returns the display name for a shift letter, or the letter
// itself when it is not a known shift.
func ShiftName(shift string) string {
	if name, ok := shiftNames[shift]; ok {
		return name
	}
	return shift
}

// Expand turns a decoded code into the full list of meetings it describes,
// one per day and hour slot, in the order they appear in the code. Codes
// with an unknown shift expand to nothing.
func (c Code) Expand() []Meeting {
	if _, ok := shiftBaseHour[c.Shift]; !ok {
		return nil
	}

	var meetings []Meeting
	for _, day := range c.Days {
		for _, slot := range c.HourSlots {
			tr, err := SlotRange(c.Shift, slot)
			if err != nil {
				continue
			}
			meetings = append(meetings, Meeting{
				Day:       day,
				DayName:   DayName(day),
				Shift:     c.Shift,
				ShiftName: ShiftName(c.Shift),
				Slot:      slot,
				Time:      tr,
			})
		}
	}
	return meetings
}

// Today returns the current day of week in the feed's 1-7 Sunday-first
// convention.
func Today() int {
	return int(time.Now().Weekday()) + 1
}
