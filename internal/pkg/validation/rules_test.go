package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("maria@school.edu.ph"))
	assert.True(t, IsValidEmail("  padded@school.edu.ph  "))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidSchoolID(t *testing.T) {
	assert.True(t, IsValidSchoolID("S100"))
	assert.True(t, IsValidSchoolID("2021-00123"))
	assert.False(t, IsValidSchoolID("ab"), "too short")
	assert.False(t, IsValidSchoolID("has space"))
	assert.False(t, IsValidSchoolID(""))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("12345678"))
	assert.False(t, IsValidPassword("1234567"))
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Maria"))
	assert.False(t, IsValidName("   "))
}
