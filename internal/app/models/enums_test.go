package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDepartment(t *testing.T) {
	for _, d := range Departments() {
		parsed, ok := ParseDepartment(string(d))
		assert.True(t, ok)
		assert.Equal(t, d, parsed)
	}

	_, ok := ParseDepartment("LAW")
	assert.False(t, ok)

	_, ok = ParseDepartment("bsit")
	assert.False(t, ok, "department values are case sensitive")

	_, ok = ParseDepartment("")
	assert.False(t, ok)
}

func TestParseYear(t *testing.T) {
	for _, y := range Years() {
		parsed, ok := ParseYear(string(y))
		assert.True(t, ok)
		assert.Equal(t, y, parsed)
	}

	_, ok := ParseYear("1999")
	assert.False(t, ok)

	_, ok = ParseYear("")
	assert.False(t, ok)
}

func TestStudentFullName(t *testing.T) {
	s := &Student{FirstName: "Maria", MiddleName: "Reyes", LastName: "Santos"}
	assert.Equal(t, "Maria Reyes Santos", s.FullName())

	s = &Student{FirstName: "Maria", LastName: "Santos"}
	assert.Equal(t, "Maria Santos", s.FullName(), "empty middle name leaves a single space")

	s = &Student{FirstName: "  Maria ", LastName: " Santos "}
	assert.Equal(t, "Maria Santos", s.FullName())
}

func TestAccountIsStaff(t *testing.T) {
	assert.True(t, (&Account{RoleType: RoleStaff}).IsStaff())
	assert.False(t, (&Account{RoleType: RoleStudent}).IsStaff())
}
