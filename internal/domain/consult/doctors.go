package consult

import "strings"

// Doctor is one entry in the built-in doctor directory used by the
// offline booking flow.
type Doctor struct {
	ID             string
	Name           string
	Specialization string
}

// directory mirrors the portal's sample doctor list.
var directory = []Doctor{
	{ID: "1", Name: "Dr. Priya Rao", Specialization: "Cardiology"},
	{ID: "2", Name: "Dr. Amit Kumar", Specialization: "Neurology"},
	{ID: "3", Name: "Dr. Sarah Johnson", Specialization: "Pediatrics"},
	{ID: "4", Name: "Dr. Rajesh Sharma", Specialization: "Orthopedics"},
	{ID: "5", Name: "Dr. Emily Chen", Specialization: "Dermatology"},
	{ID: "6", Name: "Dr. Michael Brown", Specialization: "Psychiatry"},
}

// Doctors returns the built-in doctor directory.
func Doctors() []Doctor {
	out := make([]Doctor, len(directory))
	copy(out, directory)
	return out
}

// FindDoctor looks a doctor up by ID, exact name, or name/specialization
// substring (case-insensitive). Returns false when nothing matches.
func FindDoctor(query string) (Doctor, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Doctor{}, false
	}
	for _, d := range directory {
		if d.ID == q || strings.ToLower(d.Name) == q {
			return d, true
		}
	}
	for _, d := range directory {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Specialization), q) {
			return d, true
		}
	}
	return Doctor{}, false
}
