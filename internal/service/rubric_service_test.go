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

func newRubricService(db *gorm.DB) *RubricService {
	return NewRubricService(repository.NewRubricRepository(db))
}

func TestRubricCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := newRubricService(db)

	rubric := &model.Rubric{Name: "Essay rubric", MaxScore: 100}
	require.NoError(t, svc.Create(rubric))

	got, err := svc.GetByID(rubric.ID)
	require.NoError(t, err)
	assert.Equal(t, "Essay rubric", got.Name)

	updated, err := svc.Update(rubric.ID, RubricUpdate{Name: strPtr("Final essay rubric")})
	require.NoError(t, err)
	assert.Equal(t, "Final essay rubric", updated.Name)
	assert.Equal(t, 100, updated.MaxScore)

	_, err = svc.GetByID(9999)
	assert.ErrorIs(t, err, util.ErrRubricNotFound)
}

func TestRubricCriteria(t *testing.T) {
	db := newTestDB(t)
	svc := newRubricService(db)

	rubric := &model.Rubric{Name: "Project rubric", MaxScore: 50}
	require.NoError(t, svc.Create(rubric))

	criterion := &model.RubricCriterion{Name: "Clarity", MaxPoints: 20, OrderNumber: 1}
	require.NoError(t, svc.AddCriterion(rubric.ID, criterion))
	assert.Equal(t, rubric.ID, criterion.RubricID)

	assert.ErrorIs(t, svc.AddCriterion(9999, &model.RubricCriterion{Name: "x"}), util.ErrRubricNotFound)

	patched, err := svc.UpdateCriterion(criterion.ID, CriterionUpdate{MaxPoints: intPtr(25)})
	require.NoError(t, err)
	assert.Equal(t, "Clarity", patched.Name)
	assert.Equal(t, 25, patched.MaxPoints)

	require.NoError(t, svc.DeleteCriterion(criterion.ID))
	assert.ErrorIs(t, svc.DeleteCriterion(criterion.ID), util.ErrCriterionNotFound)
}

func TestRubricDeleteCascadesCriteria(t *testing.T) {
	db := newTestDB(t)
	svc := newRubricService(db)

	rubric := &model.Rubric{Name: "Doomed rubric", MaxScore: 10}
	require.NoError(t, svc.Create(rubric))
	require.NoError(t, svc.AddCriterion(rubric.ID, &model.RubricCriterion{Name: "One", MaxPoints: 5}))
	require.NoError(t, svc.AddCriterion(rubric.ID, &model.RubricCriterion{Name: "Two", MaxPoints: 5}))

	require.NoError(t, svc.Delete(rubric.ID))

	_, err := svc.GetByID(rubric.ID)
	assert.ErrorIs(t, err, util.ErrRubricNotFound)
	var remaining int64
	db.Model(&model.RubricCriterion{}).Where("rubric_id = ?", rubric.ID).Count(&remaining)
	assert.Zero(t, remaining)
}
