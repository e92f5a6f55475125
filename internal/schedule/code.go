// Package schedule decodes the compact day/shift/hour-slot codes used by
// the class-schedule feed (e.g. "35T45": Tuesday and Thursday, afternoon
// shift, slots 4 and 5) and expands them into calendar-ready time ranges.
package schedule

import (
	"fmt"
	"sort"
)

// Code is a decoded schedule code. Days are 1-7 with Sunday as 1; HourSlots
// index the teaching periods within the shift. Both keep their order of
// appearance in the raw code.
type Code struct {
	Days      []int  `json:"days"`
	Shift     string `json:"shift"`
	HourSlots []int  `json:"hourSlots"`
}

// shiftPriority is the canonical sort order of shifts within a day.
var shiftPriority = map[string]int{
	"M": 1, // morning
	"T": 2, // afternoon
	"N": 3, // night
	"E": 4, // dawn / special
}

// Decode scans a schedule code left to right: digits before the first
// letter are days, the first letter is the shift, digits after it are hour
// slots. A code with no letter keeps an empty shift and all digits as days;
// that degenerate form appears in real feed data and is preserved as-is.
func Decode(raw string) Code {
	var code Code
	for _, c := range raw {
		switch {
		case c >= '0' && c <= '9':
			if code.Shift == "" {
				code.Days = append(code.Days, int(c-'0'))
			} else {
				code.HourSlots = append(code.HourSlots, int(c-'0'))
			}
		case (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'):
			if code.Shift == "" {
				code.Shift = string(c)
			}
		}
	}
	return code
}

// HasDay reports whether the code includes the given day (1-7, Sunday=1).
func (c Code) HasDay(day int) bool {
	for _, d := range c.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Compare orders two raw schedule codes: by earliest day, then by shift
// priority (M < T < N < E), then by earliest hour slot. It returns a
// negative, zero, or positive result like strings.Compare. A shift outside
// the priority map is a data error and fails rather than guessing an order.
func Compare(a, b string) (int, error) {
	ca, cb := Decode(a), Decode(b)

	if d := minInt(ca.Days) - minInt(cb.Days); d != 0 {
		return d, nil
	}

	pa, ok := shiftPriority[ca.Shift]
	if !ok {
		return 0, fmt.Errorf("unknown shift %q in schedule code %q", ca.Shift, a)
	}
	pb, ok := shiftPriority[cb.Shift]
	if !ok {
		return 0, fmt.Errorf("unknown shift %q in schedule code %q", cb.Shift, b)
	}
	if pa != pb {
		return pa - pb, nil
	}

	return minInt(ca.HourSlots) - minInt(cb.HourSlots), nil
}

// SortCodes sorts raw schedule codes in canonical order. The first
// comparator error aborts the sort.
func SortCodes(codes []string) error {
	var firstErr error
	sort.SliceStable(codes, func(i, j int) bool {
		r, err := Compare(codes[i], codes[j])
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return r < 0
	})
	return firstErr
}

// minInt returns the smallest value, or 0 for an empty slice so that codes
// without days or slots sort ahead of everything else.
func minInt(vs []int) int {
	if len(vs) == 0 {
		return 0
	}
	minV := vs[0]
	for _, v := range vs[1:] {
		if v < minV {
			minV = v
		}
	}
	return minV
}
