package dto_test

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homevista/homevista_backend/internal/dto"
)

func TestPhoneValidation(t *testing.T) {
	require.NoError(t, dto.RegisterValidators())

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	// gin's engine validates the `binding` tag, not `validate`.
	type payload struct {
		Phone string `binding:"phone"`
	}

	valid := []string{"9876543210", "+919876543210", "123456789012345"}
	for _, p := range valid {
		assert.NoError(t, v.Struct(payload{Phone: p}), "expected %q to be accepted", p)
	}

	invalid := []string{"12345", "98765-43210", "phone", "+1234567890123456"}
	for _, p := range invalid {
		assert.Error(t, v.Struct(payload{Phone: p}), "expected %q to be rejected", p)
	}
}
