package models

import "strings"

// Department represents one of the canonical kitchen departments lessons are grouped into
type Department string

const (
	DepartmentKitchen  Department = "kitchen"
	DepartmentBakery   Department = "bakery"
	DepartmentButchery Department = "butchery"
	// DepartmentUnrecognized is returned for labels that do not map to any department
	DepartmentUnrecognized Department = ""
)

// Departments lists the canonical departments in display order
var Departments = []Department{DepartmentKitchen, DepartmentBakery, DepartmentButchery}

// NormalizeDepartment maps a free-text department label to a canonical department.
//
// Labels are matched case-insensitively by substring in a fixed priority order:
// "kitchen", then "bakery", then the "butch" stem (covers "butchery", "butchry").
// Every component comparing department labels must go through this function.
func NormalizeDepartment(label string) Department {
	l := strings.ToLower(strings.TrimSpace(label))
	switch {
	case l == "":
		return DepartmentUnrecognized
	case strings.Contains(l, "kitchen"):
		return DepartmentKitchen
	case strings.Contains(l, "bakery"):
		return DepartmentBakery
	case strings.Contains(l, "butch"):
		return DepartmentButchery
	default:
		return DepartmentUnrecognized
	}
}

// IsValid reports whether d is one of the canonical departments
func (d Department) IsValid() bool {
	return d == DepartmentKitchen || d == DepartmentBakery || d == DepartmentButchery
}
