package render

// RoomCategory identifies the kind of room a floor-plan outline represents.
// The category selects the icon asset drawn at the room's center.
type RoomCategory string

const (
	CategoryClassroom      RoomCategory = "classroom"
	CategoryFacultyRoom    RoomCategory = "faculty-room"
	CategoryRestroomMale   RoomCategory = "restroom-male"
	CategoryRestroomFemale RoomCategory = "restroom-female"
	CategoryLibrary        RoomCategory = "library"
	CategoryAuditorium     RoomCategory = "auditorium"
	CategoryLab            RoomCategory = "lab"
	CategoryResearchLab    RoomCategory = "research-lab"
	CategoryGeneric        RoomCategory = "generic"
)

// iconAssets maps each recognized category to its embedded asset name.
// Asset filenames are the category with hyphens removed.
var iconAssets = map[RoomCategory]string{
	CategoryClassroom:      "classroom.svg",
	CategoryFacultyRoom:    "facultyroom.svg",
	CategoryRestroomMale:   "restroommale.svg",
	CategoryRestroomFemale: "restroomfemale.svg",
	CategoryLibrary:        "library.svg",
	CategoryAuditorium:     "auditorium.svg",
	CategoryLab:            "lab.svg",
	CategoryResearchLab:    "researchlab.svg",
	CategoryGeneric:        "generic.svg",
}

// CategoryOf maps a raw room type string to a category. ok is false for
// types outside the recognized set; the raw value is still returned so
// callers can carry it through (e.g. as a CSS class).
func CategoryOf(raw string) (cat RoomCategory, ok bool) {
	cat = RoomCategory(raw)
	_, ok = iconAssets[cat]
	return cat, ok
}
