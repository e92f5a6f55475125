// Package query provides the filterable view over a feed snapshot's
// allocations. Allocations are loaded once into an in-memory DuckDB table;
// all filtering and sorting happens in SQL so the API layer stays thin.
package query

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/marcboeker/go-duckdb"

	"github.com/campus-visualizer/backend/internal/models"
)

// AllocStore holds one immutable allocation set behind an in-memory DuckDB
// database. The store never mutates its allocations; queries return
// references into the loaded slice.
type AllocStore struct {
	db          *sql.DB
	allocations []models.Allocation
}

// sortColumns whitelists the dotted sort paths accepted by Query and maps
// them onto table columns.
var sortColumns = map[string]string{
	"room.name":         "room_name",
	"room.block":        "room_block",
	"room.capacity":     "room_capacity",
	"course.code":       "course_code",
	"course.name":       "course_name",
	"course.section":    "course_section",
	"course.instructor": "instructor",
	"course.department": "department",
	"course.schedule":   "schedule",
	"course.students":   "students",
}

// NewAllocStore creates an empty in-memory store.
func NewAllocStore() (*AllocStore, error) {
	connector, err := duckdb.NewConnector("", nil)
	if err != nil {
		return nil, fmt.Errorf("creating DuckDB connector: %w", err)
	}
	db := sql.OpenDB(connector)

	_, err = db.Exec(`
		CREATE TABLE allocations (
			idx            INTEGER PRIMARY KEY,
			room_name      VARCHAR NOT NULL,
			room_block     VARCHAR,
			room_capacity  INTEGER,
			course_code    VARCHAR NOT NULL,
			course_name    VARCHAR,
			course_section VARCHAR,
			instructor     VARCHAR,
			department     VARCHAR,
			schedule       VARCHAR,
			students       INTEGER
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating allocations table: %w", err)
	}

	return &AllocStore{db: db}, nil
}

// Load replaces the store's content with the given allocation set.
func (s *AllocStore) Load(allocations []models.Allocation) error {
	if _, err := s.db.Exec("DELETE FROM allocations"); err != nil {
		return fmt.Errorf("clearing allocations: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT INTO allocations VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, a := range allocations {
		_, err := stmt.Exec(
			i,
			a.Room.Name,
			a.Room.Block,
			a.Room.Capacity,
			a.Course.Code,
			a.Course.Name,
			a.Course.Section,
			a.Course.Instructor,
			a.Course.Department,
			a.Course.Schedule,
			a.Course.Students,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting allocation %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load: %w", err)
	}

	s.allocations = allocations
	return nil
}

// Filter selects and orders allocations. Zero values leave a criterion
// unset. SortBy takes a whitelisted dotted path such as "course.name";
// empty keeps feed order.
type Filter struct {
	RoomPrefix  string // case-insensitive room-name prefix (floor join)
	RoomName    string // case-insensitive exact room name
	Instructor  string
	Department  string
	Schedule    string
	MinStudents int
	MaxStudents int
	SortBy      string
	Descending  bool
}

// Query returns the allocations matching a filter, sorted as requested.
func (s *AllocStore) Query(f Filter) ([]models.Allocation, error) {
	var where []string
	var args []any

	if f.RoomPrefix != "" {
		where = append(where, "lower(room_name) LIKE ?")
		args = append(args, strings.ToLower(f.RoomPrefix)+"%")
	}
	if f.RoomName != "" {
		where = append(where, "lower(room_name) = ?")
		args = append(args, strings.ToLower(f.RoomName))
	}
	if f.Instructor != "" {
		where = append(where, "instructor = ?")
		args = append(args, f.Instructor)
	}
	if f.Department != "" {
		where = append(where, "department = ?")
		args = append(args, f.Department)
	}
	if f.Schedule != "" {
		where = append(where, "schedule = ?")
		args = append(args, f.Schedule)
	}
	if f.MinStudents > 0 {
		where = append(where, "students >= ?")
		args = append(args, f.MinStudents)
	}
	if f.MaxStudents > 0 {
		where = append(where, "students <= ?")
		args = append(args, f.MaxStudents)
	}

	q := "SELECT idx FROM allocations"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}

	order := "idx"
	if f.SortBy != "" {
		col, ok := sortColumns[f.SortBy]
		if !ok {
			return nil, fmt.Errorf("unsupported sort column %q", f.SortBy)
		}
		order = col
		if f.Descending {
			order += " DESC"
		}
		order += ", idx" // stable tie-break on feed order
	}
	q += " ORDER BY " + order

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying allocations: %w", err)
	}
	defer rows.Close()

	var result []models.Allocation
	for rows.Next() {
		var idx int
		if err := rows.Scan(&idx); err != nil {
			return nil, fmt.Errorf("scanning allocation row: %w", err)
		}
		if idx < 0 || idx >= len(s.allocations) {
			return nil, fmt.Errorf("allocation index %d out of range", idx)
		}
		result = append(result, s.allocations[idx])
	}
	return result, rows.Err()
}

// Count returns the number of loaded allocations.
func (s *AllocStore) Count() int {
	return len(s.allocations)
}

// Close releases the underlying database.
func (s *AllocStore) Close() error {
	return s.db.Close()
}
