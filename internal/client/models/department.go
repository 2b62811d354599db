package models

// Department is an organisational unit and the roles a member may hold in it.
type Department struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Roles       []string `json:"roles"`
}

// HasRole reports whether role is declared for the department.
func (d Department) HasRole(role Role) bool {
	for _, r := range d.Roles {
		if Role(r) == role {
			return true
		}
	}
	return false
}

// FindDepartment returns the department with the given name.
func FindDepartment(deps []Department, name string) (Department, bool) {
	for _, d := range deps {
		if d.Name == name {
			return d, true
		}
	}
	return Department{}, false
}
