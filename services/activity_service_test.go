package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripplefeed/api-go/models"
)

func TestActivityFeedPagination(t *testing.T) {
	env := newTestEnv(t)
	alice := createUser(t, env.db, "alice", models.RoleUser)

	for i := 0; i < 5; i++ {
		require.NoError(t, env.activity.Record(alice.ID, models.ActionPost,
			fmt.Sprintf("entry %d", i), nil))
	}

	page, err := env.activity.Feed(2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "entry 4", page[0].Message, "newest first")
	assert.Equal(t, "entry 3", page[1].Message)

	page, err = env.activity.Feed(2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "entry 2", page[0].Message)

	// An offset past the end is an empty page, not an error.
	page, err = env.activity.Feed(2, 100)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestActivityFeedDefaults(t *testing.T) {
	env := newTestEnv(t)
	alice := createUser(t, env.db, "alice", models.RoleUser)

	require.NoError(t, env.activity.Record(alice.ID, models.ActionLike, "alice liked a post", nil))

	// Zero and negative paging arguments fall back to the defaults.
	page, err := env.activity.Feed(0, -1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "alice", page[0].Actor.Username, "actor is resolved")
}

func TestActivityFeedInsertionOrderTieBreak(t *testing.T) {
	env := newTestEnv(t)
	alice := createUser(t, env.db, "alice", models.RoleUser)

	// Entries written back to back share timestamps at coarse resolution;
	// the id keeps them in reverse insertion order.
	for i := 0; i < 3; i++ {
		require.NoError(t, env.activity.Record(alice.ID, models.ActionPost,
			fmt.Sprintf("burst %d", i), nil))
	}

	page, err := env.activity.Feed(3, 0)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "burst 2", page[0].Message)
	assert.Equal(t, "burst 1", page[1].Message)
	assert.Equal(t, "burst 0", page[2].Message)
}
