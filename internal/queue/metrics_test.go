package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutoring_queue/internal/catalog"
	"tutoring_queue/internal/models"
)

func TestEstimatedWait_IsLinear(t *testing.T) {
	f := newFixture(t)

	for p := 0; p <= 40; p++ {
		assert.Equal(t, p*25, f.store.EstimatedWait("s1", p))
	}
	assert.Equal(t, 0, f.store.EstimatedWait("missing", 3))
}

func TestEstimatedWait_FollowsCatalogEdits(t *testing.T) {
	f := newFixture(t)
	d := 40
	_, err := f.catalog.Update("s1", catalog.ServicePatch{ExpectedDuration: &d})
	require.NoError(t, err)

	assert.Equal(t, 120, f.store.EstimatedWait("s1", 3))
}

func TestQueueForService_ReturnsCopies(t *testing.T) {
	f := newFixture(t)
	f.join(t, "u1", "s1")

	entries := f.store.QueueForService("s1")
	require.Len(t, entries, 1)
	entries[0].Position = 99

	assert.Equal(t, 1, f.store.QueueForService("s1")[0].Position)
	assert.Empty(t, f.store.QueueForService("missing"))
}

func TestUserEntryAndEntry(t *testing.T) {
	f := newFixture(t)
	u1 := f.join(t, "u1", "s1")

	got, ok := f.store.UserEntry("u1", "s1")
	require.True(t, ok)
	assert.Equal(t, u1.ID, got.ID)

	_, ok = f.store.UserEntry("u2", "s1")
	assert.False(t, ok)

	got, ok = f.store.Entry(u1.ID)
	require.True(t, ok)
	assert.Equal(t, "u1", got.UserID)

	f.store.Leave(u1.ID)
	_, ok = f.store.Entry(u1.ID)
	assert.False(t, ok)
}

func TestUserActiveQueues_OnlyWaiting(t *testing.T) {
	f := newFixture(t,
		models.Service{ID: "s1", Name: "Math", Description: "d", Category: "c", ExpectedDuration: 10, IsOpen: true},
		models.Service{ID: "s2", Name: "Physics", Description: "d", Category: "c", ExpectedDuration: 20, IsOpen: true},
	)
	f.join(t, "u1", "s1")
	f.join(t, "u1", "s2")
	f.join(t, "u2", "s2")

	_, err := f.store.ServeNext("s1")
	require.NoError(t, err)

	active := f.store.UserActiveQueues("u1")
	require.Len(t, active, 1)
	assert.Equal(t, "s2", active[0].ServiceID)
	assert.Empty(t, f.store.UserActiveQueues("nobody"))
	assert.Equal(t, 2, f.store.TotalWaiting())
}
