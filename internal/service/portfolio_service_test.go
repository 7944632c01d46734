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

func newPortfolioService(db *gorm.DB) *PortfolioService {
	return NewPortfolioService(
		repository.NewPortfolioRepository(db),
		repository.NewUserRepository(db),
	)
}

func TestPortfolioGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newPortfolioService(db)

	student := createTestUser(t, db, "student@example.com", model.RoleStudent)

	first, err := svc.GetOrCreate(student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, first.StudentID)

	second, err := svc.GetOrCreate(student.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&model.Portfolio{}).Count(&count)
	assert.EqualValues(t, 1, count)

	_, err = svc.GetOrCreate(9999)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestPortfolioItems(t *testing.T) {
	db := newTestDB(t)
	svc := newPortfolioService(db)

	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	other := createTestUser(t, db, "other@example.com", model.RoleStudent)

	item, err := svc.AddItem(student.ID, &model.PortfolioItem{
		Title: "My best reflection",
		Type:  model.PortfolioItemReflection,
	})
	require.NoError(t, err)
	require.NotZero(t, item.ID)

	// Another student cannot remove it.
	assert.ErrorIs(t, svc.RemoveItem(other.ID, item.ID), util.ErrItemNotFound)

	require.NoError(t, svc.RemoveItem(student.ID, item.ID))
	assert.ErrorIs(t, svc.RemoveItem(student.ID, item.ID), util.ErrItemNotFound)
}
