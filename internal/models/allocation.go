package models

// Center represents the academic center that owns the schedule feed.
type Center struct {
	ID          string `json:"id"`
	Name        string `json:"centro"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Room represents a schedulable room as reported by the feed. The feed's
// room names carry a floor prefix ("sb01", "t05", "101", ...) used to join
// against the floor plans.
type Room struct {
	ID         int    `json:"id"`
	Block      string `json:"bloco"`
	Name       string `json:"nome"`
	Capacity   int    `json:"capacidade"`
	Type       string `json:"tipo"`
	Accessible bool   `json:"acessivel"`
}

// CourseSection represents one course section scheduled into a room.
// Schedule holds the compact day/shift/slot code (e.g. "35T45").
type CourseSection struct {
	ID          int      `json:"id"`
	Code        string   `json:"codigo"`
	Name        string   `json:"nome"`
	Section     string   `json:"turma"`
	Instructor  string   `json:"docente"`
	Department  string   `json:"departamento"`
	Schedule    string   `json:"horario"`
	Students    int      `json:"alunos"`
	PCD         int      `json:"pcd"`
	Preferences []string `json:"preferencias"`
}

// Allocation ties one course section to the room and center it occupies.
// Allocations are read-only snapshots materialized once per feed fetch.
type Allocation struct {
	Center Center        `json:"center"`
	Room   Room          `json:"room"`
	Course CourseSection `json:"course"`
}
