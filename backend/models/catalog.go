package models

// Subject is one of the nine PPL theory subjects. The catalog is fixed at
// compile time and never persisted.
type Subject struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var Subjects = []Subject{
	{ID: "regl", Label: "Réglementation", Color: "#b07ef0"},
	{ID: "cga", Label: "Connaissance générale de l'aéronef", Color: "#4f9cf0"},
	{ID: "ppv", Label: "Performances et préparation du vol", Color: "#7ecfb3"},
	{ID: "phpl", Label: "Performances humaines et ses limites", Color: "#e8c840"},
	{ID: "meteo", Label: "Météorologie", Color: "#e87f5c"},
	{ID: "nav", Label: "Navigation", Color: "#5abf80"},
	{ID: "proc", Label: "Procédures opérationnelles", Color: "#e05a5a"},
	{ID: "pdv", Label: "Principes du vol", Color: "#f07ac0"},
	{ID: "com", Label: "Communication", Color: "#f0b44f"},
}

// Days of the timetable grid, index 0 = Monday.
var Days = []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche"}

// SubjectLabel returns the display label for a subject id. Unknown ids are
// tolerated and rendered as-is.
func SubjectLabel(id string) string {
	for _, s := range Subjects {
		if s.ID == id {
			return s.Label
		}
	}
	return id
}

// SubjectColor returns the catalog color for a subject id, or a neutral grey
// for unknown ids.
func SubjectColor(id string) string {
	for _, s := range Subjects {
		if s.ID == id {
			return s.Color
		}
	}
	return "#888"
}
