package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Sort     string `query:"sort" validate:"omitempty,oneof=newest name_asc"`
}

func TestValidate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&loginForm{Email: "ann@example.com", Password: "secret1"}))
	})

	t.Run("reports json and query names", func(t *testing.T) {
		err := v.Validate(&loginForm{Email: "nope", Sort: "random"})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []FieldError{
			{Field: "email", Rule: "email"},
			{Field: "password", Rule: "required"},
			{Field: "sort", Rule: "oneof", Param: "newest name_asc"},
		}, verr.Fields)
		assert.Contains(t, err.Error(), "email failed email")
	})
}
