package schedule

import (
	"testing"
	"time"
)

func TestSlotRange(t *testing.T) {
	tests := []struct {
		shift string
		slot  int
		start string
		end   string
	}{
		{"M", 1, "07:00", "08:00"},
		{"M", 6, "12:00", "13:00"},
		{"T", 1, "13:00", "14:00"},
		{"T", 5, "17:00", "18:00"},
		{"N", 1, "19:00", "20:00"},
		{"N", 4, "22:00", "23:00"},
		{"E", 1, "01:00", "02:00"},
	}

	for _, tt := range tests {
		tr, err := SlotRange(tt.shift, tt.slot)
		if err != nil {
			t.Errorf("SlotRange(%s, %d) failed: %v", tt.shift, tt.slot, err)
			continue
		}
		if tr.Start != tt.start || tr.End != tt.end {
			t.Errorf("SlotRange(%s, %d) = %s-%s, want %s-%s",
				tt.shift, tt.slot, tr.Start, tr.End, tt.start, tt.end)
		}
	}
}

func TestSlotRange_UnknownShift(t *testing.T) {
	if _, err := SlotRange("X", 1); err == nil {
		t.Error("expected error for unknown shift")
	}
}

func TestExpand(t *testing.T) {
	meetings := Decode("35T45").Expand()

	if len(meetings) != 4 { // 2 days x 2 slots
		t.Fatalf("expected 4 meetings, got %d", len(meetings))
	}

	first := meetings[0]
	if first.Day != 3 || first.DayName != "Tuesday" {
		t.Errorf("unexpected first meeting day: %+v", first)
	}
	if first.ShiftName != "Afternoon" {
		t.Errorf("unexpected shift name: %s", first.ShiftName)
	}
	if first.Time.Start != "16:00" || first.Time.End != "17:00" {
		t.Errorf("unexpected time range for T4: %+v", first.Time)
	}
}

func TestExpand_UnknownShift(t *testing.T) {
	if meetings := Decode("235").Expand(); meetings != nil {
		t.Errorf("expected no meetings for letterless code, got %v", meetings)
	}
}

func TestToday(t *testing.T) {
	want := int(time.Now().Weekday()) + 1
	if got := Today(); got != want {
		t.Errorf("Today() = %d, want %d", got, want)
	}
	if got := Today(); got < 1 || got > 7 {
		t.Errorf("Today() out of range: %d", got)
	}
}
