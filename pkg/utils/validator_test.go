package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email string `validate:"required,email"`
	Year  int    `validate:"gte=1990"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		errs := ValidateStruct(sampleInput{Email: "a@b.com", Year: 2020})
		assert.Nil(t, errs)
	})

	t.Run("Invalid", func(t *testing.T) {
		errs := ValidateStruct(sampleInput{Email: "nope", Year: 1900})
		require.Len(t, errs, 2)
		assert.Equal(t, "Invalid email format", errs["Email"])
		assert.Equal(t, "Must be 1990 or greater", errs["Year"])
	})

	t.Run("MissingRequired", func(t *testing.T) {
		errs := ValidateStruct(sampleInput{Year: 2020})
		require.Len(t, errs, 1)
		assert.Equal(t, "This field is required", errs["Email"])
	})
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"Email": "Invalid email format"})
	assert.Equal(t, "Email: Invalid email format", out)

	out = FormatValidationErrors(map[string]string{
		"Email": "Invalid email format",
		"Year":  "Must be 1990 or greater",
	})
	assert.Contains(t, out, "; ")
}

func TestGenerateTransactionID(t *testing.T) {
	id := GenerateTransactionID()
	assert.True(t, strings.HasPrefix(id, "SIM-"))
	assert.Greater(t, len(id), len("SIM-"))
}

func TestGenerateSessionToken(t *testing.T) {
	a := GenerateSessionToken()
	b := GenerateSessionToken()
	assert.NotEqual(t, a, b)
}
