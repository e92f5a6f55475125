package models

// Floor describes one building level registered in floors.yaml.
type Floor struct {
	Name       string `yaml:"name" json:"name"`             // stable identifier, e.g. "basement"
	Display    string `yaml:"display" json:"display"`       // user-facing label
	Definition string `yaml:"definition" json:"definition"` // room-outline JSON file
	Output     string `yaml:"output" json:"output"`         // composed SVG file
	RoomPrefix string `yaml:"roomPrefix" json:"roomPrefix"` // feed room-name prefix for this floor
}

// FloorRegistry is the parsed floors.yaml document.
type FloorRegistry struct {
	Floors []Floor `yaml:"floors" json:"floors"`
}

// Find returns the floor with the given name.
func (r *FloorRegistry) Find(name string) (Floor, bool) {
	for _, f := range r.Floors {
		if f.Name == name {
			return f, true
		}
	}
	return Floor{}, false
}
