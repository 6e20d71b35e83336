package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutoring_queue/internal/models"
)

func seeded(t *testing.T) *Directory {
	t.Helper()
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	d := New()
	require.NoError(t, d.Load(
		models.Account{ID: "u1", Name: "Ada Lovelace", Email: "Ada@Campus.edu", Role: models.RoleStudent, PasswordHash: hash},
		models.Account{ID: "a1", Name: "Grace Hopper", Email: "grace@campus.edu", Role: models.RoleAdmin, PasswordHash: hash},
	))
	return d
}

func TestLookup(t *testing.T) {
	d := seeded(t)

	a, ok := d.Lookup("u1")
	require.True(t, ok)
	assert.Equal(t, "Ada Lovelace", a.Name)
	assert.Equal(t, "ada@campus.edu", a.Email)

	_, ok = d.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, d.Len())
}

func TestAuthenticate(t *testing.T) {
	d := seeded(t)

	a, err := d.Authenticate(" ADA@campus.edu ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u1", a.ID)

	_, err = d.Authenticate("ada@campus.edu", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = d.Authenticate("nobody@campus.edu", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister(t *testing.T) {
	d := seeded(t)

	a, err := d.Register("Alan Turing", "alan@campus.edu", "enigma42", models.RoleStudent)
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, "enigma42", a.PasswordHash)

	got, err := d.Authenticate("alan@campus.edu", "enigma42")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = d.Register("Ada Again", "ada@campus.edu", "whatever", models.RoleStudent)
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = d.Register("Root", "root@campus.edu", "whatever", models.Role("superuser"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLoad_RejectsDuplicatesAndBadRoles(t *testing.T) {
	d := New()

	err := d.Load(
		models.Account{ID: "x1", Email: "x@campus.edu", Role: models.RoleStudent},
		models.Account{ID: "x2", Email: "X@campus.edu", Role: models.RoleStudent},
	)
	assert.ErrorIs(t, err, ErrEmailExists)

	err = New().Load(models.Account{ID: "y", Email: "y@campus.edu", Role: "guest"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRemove(t *testing.T) {
	d := seeded(t)

	assert.True(t, d.Remove("u1"))
	assert.False(t, d.Remove("u1"))
	_, ok := d.Lookup("u1")
	assert.False(t, ok)
	assert.Equal(t, 1, d.Len())

	_, err := d.Authenticate("ada@campus.edu", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = d.Register("Ada", "ada@campus.edu", "secret1", models.RoleStudent)
	assert.NoError(t, err, "a removed email can be registered again")
}
