package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+15555550123"))
	assert.True(t, ValidatePhone("555 123 4567"))
	assert.True(t, ValidatePhone("(555) 123-4567"))
	assert.False(t, ValidatePhone("not a phone"))
	assert.False(t, ValidatePhone(""))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("jane@example.com"))
	assert.True(t, ValidateEmail("jane.doe+tag@clinic.example.org"))
	assert.False(t, ValidateEmail("jane@example"))
	assert.False(t, ValidateEmail("jane example@example.com"))
	assert.False(t, ValidateEmail(""))
}
