package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNotificationService(db *gorm.DB) *NotificationService {
	return NewNotificationService(repository.NewNotificationRepository(db))
}

func TestNotificationLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	owner := createTestUser(t, db, "owner@example.com", model.RoleStudent)
	other := createTestUser(t, db, "other@example.com", model.RoleStudent)

	n1 := &model.Notification{UserID: owner.ID, Type: model.NotificationForumReply, Title: "Reply"}
	n2 := &model.Notification{UserID: owner.ID, Type: model.NotificationCertificateIssued, Title: "Certificate"}
	require.NoError(t, svc.Create(n1))
	require.NoError(t, svc.Create(n2))

	unread, err := svc.UnreadCount(owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	// Only the owner can mark or delete.
	assert.ErrorIs(t, svc.MarkRead(other.ID, n1.ID), util.ErrNotificationNotFound)
	assert.ErrorIs(t, svc.Delete(other.ID, n1.ID), util.ErrNotificationNotFound)

	require.NoError(t, svc.MarkRead(owner.ID, n1.ID))
	unread, err = svc.UnreadCount(owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	require.NoError(t, svc.MarkAllRead(owner.ID))
	unread, err = svc.UnreadCount(owner.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)

	require.NoError(t, svc.Delete(owner.ID, n2.ID))
	list, err := svc.ListByUser(owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, svc.MarkRead(owner.ID, 9999), util.ErrNotificationNotFound)
}
