package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ripplefeed/api-go/models"
	"github.com/ripplefeed/api-go/utils"
)

type testEnv struct {
	db            *gorm.DB
	dispatcher    *Dispatcher
	activity      *ActivityService
	notifications *NotificationService
	graph         *GraphService
	posts         *PostService
	interactions  *InteractionService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// One connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Bookmark{},
		&models.Follow{},
		&models.Block{},
		&models.Activity{},
		&models.Notification{},
	))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatcher := NewDispatcher(DefaultMaxRecipients)
	likeCache := NewLikeCache(nil)
	activity := NewActivityService(db)
	notifications := NewNotificationService(db, dispatcher, logger)
	graph := NewGraphService(db, activity, notifications, logger)

	return &testEnv{
		db:            db,
		dispatcher:    dispatcher,
		activity:      activity,
		notifications: notifications,
		graph:         graph,
		posts:         NewPostService(db, graph, activity, notifications, likeCache, logger),
		interactions:  NewInteractionService(db, activity, notifications, likeCache, logger),
	}
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func claims(user *models.User) *utils.UserClaims {
	return &utils.UserClaims{UserID: user.ID, Role: user.Role}
}

// takeNotification reads the recipient's next queued message, failing the
// test if none arrives quickly.
func takeNotification(t *testing.T, env *testEnv, recipientID uint) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	msg, ok := env.notifications.Subscribe(recipientID).Next(ctx)
	require.True(t, ok, "expected a notification for user %d", recipientID)
	return msg
}

func activityCount(t *testing.T, db *gorm.DB, action models.ActionType) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.Activity{}).
		Where("action_type = ?", action).
		Count(&count).Error)
	return count
}
