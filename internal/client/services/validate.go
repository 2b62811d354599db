package services

import (
	"strings"

	"github.com/dmitrijs2005/lmsclient/internal/client/models"
)

// CodeLength is the number of digits in a one-time code.
const CodeLength = 6

// validCode reports whether code is exactly six ASCII digits.
func validCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

func validateEmail(email string) *FlowError {
	if strings.TrimSpace(email) == "" {
		return validationError(ErrMissingFields, "Email is required")
	}
	return nil
}

// validateProfile checks required fields and that the role is one the
// department offers. deps is the server's department list.
func validateProfile(p models.RegistrationProfile, deps []models.Department) *FlowError {
	if p.Name == "" || p.Email == "" || p.Department == "" || p.Role == "" {
		return validationError(ErrMissingFields, "Please fill in all fields")
	}
	dep, ok := models.FindDepartment(deps, p.Department)
	if !ok {
		return validationError(ErrRoleNotAllowed, "Please select a valid department")
	}
	if !dep.HasRole(p.Role) {
		return validationError(ErrRoleNotAllowed, "Please select a valid role for "+dep.Name)
	}
	return nil
}
