package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripplefeed/api-go/models"
)

func TestNotifyPersistsAndDelivers(t *testing.T) {
	env := newTestEnv(t)
	alice := createUser(t, env.db, "alice", models.RoleUser)

	env.notifications.Notify(alice.ID, "bob recently liked your post")

	assert.Equal(t, "bob recently liked your post", takeNotification(t, env, alice.ID))

	// An audit row exists but delivery never reads it back.
	var rows []models.Notification
	require.NoError(t, env.db.Where("user_id = ?", alice.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "bob recently liked your post", rows[0].Message)
}

func TestNotifyPreservesPublishOrder(t *testing.T) {
	env := newTestEnv(t)
	alice := createUser(t, env.db, "alice", models.RoleUser)

	env.notifications.Notify(alice.ID, "M1")
	env.notifications.Notify(alice.ID, "M2")

	sub := env.notifications.Subscribe(alice.ID)
	assert.Equal(t, "M1", take(t, sub))
	assert.Equal(t, "M2", take(t, sub))
}
