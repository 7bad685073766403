package errhound

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrorsPreservesOrder(t *testing.T) {
	t.Parallel()

	var f FieldErrors
	f.Add("Password", "Password is required")
	f.Add("Email", "Email is required")
	f.Add("Password", "Password is too short")

	assert.Equal(t, []string{"Password", "Email"}, f.Fields())
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"Password is required", "Password is too short"}, f.Get("Password"))
	assert.Nil(t, f.Get("Name"))
}

func TestFieldErrorsKeepsDuplicates(t *testing.T) {
	t.Parallel()

	var f FieldErrors
	f.Add("Email", "Email is required")
	f.Add("Email", "Email is required")

	assert.Equal(t, []string{"Email is required", "Email is required"}, f.Get("Email"))
}

func TestFieldErrorsGetReturnsCopy(t *testing.T) {
	t.Parallel()

	var f FieldErrors
	f.Add("Email", "Email is required")

	got := f.Get("Email")
	got[0] = "mutated"

	assert.Equal(t, []string{"Email is required"}, f.Get("Email"))
}

func TestFieldErrorsClone(t *testing.T) {
	t.Parallel()

	var f FieldErrors
	f.Add("Email", "Email is required")

	c := f.Clone()
	c.Add("Email", "Email must be valid")
	c.Add("Name", "Name is required")

	assert.Equal(t, 1, f.Len())
	assert.Equal(t, []string{"Email is required"}, f.Get("Email"))
	assert.Equal(t, []string{"Email", "Name"}, c.Fields())
}

func TestFieldErrorsPlainCopySharesStorage(t *testing.T) {
	t.Parallel()

	var f FieldErrors
	f.Add("Email", "Email is required")

	shared := f
	shared.Add("Email", "Email must be valid")
	assert.Equal(t, []string{"Email is required", "Email must be valid"}, f.Get("Email"))

	independent := f.Clone()
	independent.Add("Email", "Email is taken")
	assert.Len(t, f.Get("Email"), 2)
	assert.Len(t, independent.Get("Email"), 3)
}

func TestFieldErrorsMap(t *testing.T) {
	t.Parallel()

	var f FieldErrors
	f.Add("Email", "Email is required")
	f.Add("Name", "Name is required")

	assert.Equal(t, map[string][]string{
		"Email": {"Email is required"},
		"Name":  {"Name is required"},
	}, f.Map())
}

func TestFieldErrorsMarshalJSON(t *testing.T) {
	t.Parallel()

	var f FieldErrors
	f.Add("Zeta", "z")
	f.Add("Alpha", "a1")
	f.Add("Alpha", "a2")

	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":["z"],"Alpha":["a1","a2"]}`, string(data))

	var empty FieldErrors
	data, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestFieldErrorsUnmarshalJSON(t *testing.T) {
	t.Parallel()

	var f FieldErrors
	require.NoError(t, json.Unmarshal([]byte(`{"Zeta":["z"],"Alpha":["a1","a2"]}`), &f))

	assert.Equal(t, []string{"Zeta", "Alpha"}, f.Fields())
	assert.Equal(t, []string{"a1", "a2"}, f.Get("Alpha"))
}

func TestFieldErrorsUnmarshalJSONRejectsNonObject(t *testing.T) {
	t.Parallel()

	var f FieldErrors
	assert.Error(t, json.Unmarshal([]byte(`["Email"]`), &f))
	assert.Error(t, json.Unmarshal([]byte(`{"Email":"not a list"}`), &f))
}
