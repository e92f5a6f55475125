package query

import (
	"testing"

	"github.com/campus-visualizer/backend/internal/models"
)

func alloc(room, code, instructor, dept, sched string, students int) models.Allocation {
	return models.Allocation{
		Room: models.Room{Name: room, Block: "CI", Capacity: 50},
		Course: models.CourseSection{
			Code: code, Name: code, Instructor: instructor,
			Department: dept, Schedule: sched, Students: students,
		},
	}
}

func loadedStore(t *testing.T) *AllocStore {
	t.Helper()
	s, err := NewAllocStore()
	if err != nil {
		t.Fatalf("NewAllocStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	err = s.Load([]models.Allocation{
		alloc("t05", "DCC101", "Ada", "DCC", "35T45", 38),
		alloc("sb01", "DCC205", "Grace", "DCC", "2M12", 20),
		alloc("101", "MAT110", "Emmy", "MAT", "24N12", 55),
		alloc("sb02", "DCC301", "Ada", "DCC", "6T23", 12),
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s
}

func TestQuery_NoFilterKeepsFeedOrder(t *testing.T) {
	s := loadedStore(t)

	got, err := s.Query(Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 allocations, got %d", len(got))
	}
	if got[0].Course.Code != "DCC101" || got[3].Course.Code != "DCC301" {
		t.Errorf("feed order not preserved: %v, %v", got[0].Course.Code, got[3].Course.Code)
	}
}

func TestQuery_RoomPrefix(t *testing.T) {
	s := loadedStore(t)

	got, err := s.Query(Filter{RoomPrefix: "sb"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 basement allocations, got %d", len(got))
	}
	for _, a := range got {
		if a.Room.Name[:2] != "sb" {
			t.Errorf("unexpected room %q", a.Room.Name)
		}
	}
}

func TestQuery_Filters(t *testing.T) {
	s := loadedStore(t)

	got, err := s.Query(Filter{Instructor: "Ada", Department: "DCC"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 allocations for Ada, got %d", len(got))
	}

	got, err = s.Query(Filter{MinStudents: 30, MaxStudents: 60})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 allocations in student range, got %d", len(got))
	}

	got, err = s.Query(Filter{Schedule: "2M12"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Course.Code != "DCC205" {
		t.Errorf("schedule filter failed: %v", got)
	}
}

func TestQuery_Sort(t *testing.T) {
	s := loadedStore(t)

	got, err := s.Query(Filter{SortBy: "course.students"})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Course.Students > got[i].Course.Students {
			t.Fatalf("not sorted ascending by students: %v", got)
		}
	}

	got, err = s.Query(Filter{SortBy: "course.students", Descending: true})
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Course.Students != 55 {
		t.Errorf("descending sort failed, first has %d students", got[0].Course.Students)
	}
}

func TestQuery_UnsupportedSortColumn(t *testing.T) {
	s := loadedStore(t)

	if _, err := s.Query(Filter{SortBy: "course.secret"}); err == nil {
		t.Error("expected error for unsupported sort column")
	}
}

func TestLoad_Replaces(t *testing.T) {
	s := loadedStore(t)

	if err := s.Load([]models.Allocation{alloc("t01", "FIS100", "Lise", "FIS", "2M1", 30)}); err != nil {
		t.Fatal(err)
	}
	if s.Count() != 1 {
		t.Errorf("expected 1 allocation after reload, got %d", s.Count())
	}

	got, err := s.Query(Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Course.Code != "FIS100" {
		t.Errorf("reload did not replace content: %v", got)
	}
}
