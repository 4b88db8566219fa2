package models

// Department is the closed set of departments a student or album can belong to.
type Department string

const (
	DepartmentBSHM Department = "BSHM"
	DepartmentSTEM Department = "STEM"
	DepartmentABM  Department = "ABM"
	DepartmentBSIT Department = "BSIT"
	DepartmentBSED Department = "BSED"
)

// Departments returns all valid departments in display order.
func Departments() []Department {
	return []Department{DepartmentBSHM, DepartmentSTEM, DepartmentABM, DepartmentBSIT, DepartmentBSED}
}

// ParseDepartment validates a raw department value against the closed set.
// Unknown values report ok=false; callers filtering a browse request treat
// that as "not provided" rather than an error.
func ParseDepartment(value string) (Department, bool) {
	switch Department(value) {
	case DepartmentBSHM, DepartmentSTEM, DepartmentABM, DepartmentBSIT, DepartmentBSED:
		return Department(value), true
	}
	return "", false
}

// Year is the closed set of enrollment years covered by the yearbook.
type Year string

const (
	Year2021 Year = "2021"
	Year2022 Year = "2022"
	Year2023 Year = "2023"
	Year2024 Year = "2024"
	Year2025 Year = "2025"
)

// Years returns all valid enrollment years in ascending order.
func Years() []Year {
	return []Year{Year2021, Year2022, Year2023, Year2024, Year2025}
}

// ParseYear validates a raw year value against the closed set.
func ParseYear(value string) (Year, bool) {
	switch Year(value) {
	case Year2021, Year2022, Year2023, Year2024, Year2025:
		return Year(value), true
	}
	return "", false
}
