package validate

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/errhound"
)

type address struct {
	City string `json:"city" validate:"required"`
}

type signup struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password,omitempty" validate:"required,min=8"`
	Age      int     `json:"age" validate:"gte=18"`
	Role     string  `json:"role" validate:"oneof=admin user"`
	Seats    int     `validate:"min=1,max=10"`
	Address  address `json:"address"`
}

func valid() signup {
	return signup{
		Email:    "ada@example.com",
		Password: "correct horse",
		Age:      36,
		Role:     "admin",
		Seats:    2,
		Address:  address{City: "London"},
	}
}

func TestStructValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, New().Struct(valid()))
}

func TestStructCollectsEveryField(t *testing.T) {
	t.Parallel()

	err := New().Struct(signup{})
	require.Error(t, err)

	var ve *errhound.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, errhound.CodeValidation, ve.ErrorCode())

	fields := ve.FieldErrors()
	assert.Equal(t, []string{"email", "password", "age", "role", "Seats", "address.city"}, fields.Fields())
	assert.Equal(t, []string{"is required"}, fields.Get("email"))
	assert.Equal(t, []string{"is required"}, fields.Get("password"))
	assert.Equal(t, []string{"must be greater than or equal to 18"}, fields.Get("age"))
	assert.Equal(t, []string{"must be one of [admin user]"}, fields.Get("role"))
	assert.Equal(t, []string{"must be at least 1"}, fields.Get("Seats"))
	assert.Equal(t, []string{"is required"}, fields.Get("address.city"))
}

func TestStructMessages(t *testing.T) {
	t.Parallel()

	s := valid()
	s.Email = "not-an-email"
	s.Password = "short"
	s.Seats = 11

	err := New().Struct(s)
	var ve *errhound.ValidationError
	require.ErrorAs(t, err, &ve)

	fields := ve.FieldErrors()
	assert.Equal(t, []string{"must be a valid email address"}, fields.Get("email"))
	assert.Equal(t, []string{"must be at least 8 characters"}, fields.Get("password"))
	assert.Equal(t, []string{"must be at most 10"}, fields.Get("Seats"))
	assert.Equal(t, 3, fields.Len())
}

func TestStructInvalidInput(t *testing.T) {
	t.Parallel()

	err := New().Struct(nil)
	require.Error(t, err)

	var ve *errhound.ValidationError
	assert.False(t, errors.As(err, &ve))
}

func TestCollectAppendsToExisting(t *testing.T) {
	t.Parallel()

	v := New()
	ve := errhound.NewValidation("")
	ve.AddFieldError("email", "is already registered")

	s := valid()
	s.Email = ""
	require.NoError(t, v.Collect(ve, v.Engine().Struct(s)))

	assert.Equal(t, []string{"is already registered", "is required"}, ve.FieldErrors().Get("email"))
	assert.NoError(t, v.Collect(ve, nil))

	other := errors.New("boom")
	assert.Same(t, other, v.Collect(ve, other))
}

func TestCustomTag(t *testing.T) {
	t.Parallel()

	v := New()
	require.NoError(t, v.Engine().RegisterValidation("even", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%2 == 0
	}))

	type order struct {
		Quantity int `json:"quantity" validate:"even"`
	}

	err := v.Struct(order{Quantity: 3})
	var ve *errhound.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"failed validation (even)"}, ve.FieldErrors().Get("quantity"))
}
