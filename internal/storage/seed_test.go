package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutoring_queue/internal/catalog"
	"tutoring_queue/internal/directory"
	"tutoring_queue/internal/models"
)

const seedYAML = `
accounts:
  - id: u1
    name: Ada Lovelace
    email: ada@campus.edu
    role: student
    password: student123
  - id: a1
    name: Grace Hopper
    email: grace@campus.edu
    role: admin
    password: admin123
services:
  - id: s1
    name: Calculus Help
    description: Limits, derivatives and integrals
    category: Math
    expectedDuration: 25
    priorityLevel: high
    icon: "📐"
    isOpen: true
  - id: s2
    name: Essay Review
    description: Structure and citations
    category: Writing
    expectedDuration: 30
    isOpen: false
`

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSeedAndApply(t *testing.T) {
	seed, err := LoadSeed(writeSeed(t, seedYAML))
	require.NoError(t, err)
	require.Len(t, seed.Accounts, 2)
	require.Len(t, seed.Services, 2)

	dir := directory.New()
	cat := catalog.New()
	require.NoError(t, seed.Apply(dir, cat, true))

	a, err := dir.Authenticate("grace@campus.edu", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, a.Role)

	s1, ok := cat.Service("s1")
	require.True(t, ok)
	assert.Equal(t, 25, s1.ExpectedDuration)
	assert.Equal(t, models.PriorityHigh, s1.PriorityLevel)
	assert.True(t, s1.IsOpen)

	s2, ok := cat.Service("s2")
	require.True(t, ok)
	assert.False(t, s2.IsOpen)
	assert.Equal(t, models.PriorityMedium, s2.PriorityLevel)
}

func TestApply_WithoutAccounts(t *testing.T) {
	seed, err := LoadSeed(writeSeed(t, seedYAML))
	require.NoError(t, err)

	dir := directory.New()
	require.NoError(t, seed.Apply(dir, catalog.New(), false))
	assert.Equal(t, 0, dir.Len())
}

func TestLoadSeed_Errors(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadSeed(writeSeed(t, "services: [oops"))
	assert.Error(t, err)

	seed, err := LoadSeed(writeSeed(t, "services:\n  - id: bad\n    name: No Duration\n    description: d\n    category: c\n"))
	require.NoError(t, err)
	assert.ErrorIs(t, seed.Apply(directory.New(), catalog.New(), false), catalog.ErrInvalidService)
}
