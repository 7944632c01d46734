package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateGrade(t *testing.T) {
	cases := []struct {
		score float64
		grade string
	}{
		{100, "A'LO"},
		{92, "A'LO"},
		{90.0, "A'LO"},
		{89.99, "YAXSHI"},
		{80, "YAXSHI"},
		{79.99, "O'RTA"},
		{70, "O'RTA"},
		{69.99, "QONIQARLI"},
		{60, "QONIQARLI"},
		{59.99, "QONIQARSIZ"},
		{55, "QONIQARSIZ"},
		{0, "QONIQARSIZ"},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.grade, CalculateGrade(tc.score), "score %.2f", tc.score)
	}
}

func TestCertificateGenerate(t *testing.T) {
	db := newTestDB(t)
	svc := newCertificateService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	course := createTestCourse(t, db, teacher.ID)

	cert, err := svc.Generate(student.ID, course.ID, 87.5)
	require.NoError(t, err)

	assert.Equal(t, "YAXSHI", cert.Grade)
	assert.Len(t, cert.CertificateCode, 36)
	require.NotNil(t, cert.IssuedByID)
	assert.Equal(t, teacher.ID, *cert.IssuedByID)
	assert.False(t, cert.IssuedAt.IsZero())

	// The certificate lands in the student's portfolio.
	var items []model.PortfolioItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, model.PortfolioItemCertificate, items[0].Type)

	// And the student is notified.
	var notifications []model.Notification
	require.NoError(t, db.Where("user_id = ?", student.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationCertificateIssued, notifications[0].Type)
}

func TestCertificateGenerateDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newCertificateService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	course := createTestCourse(t, db, teacher.ID)

	_, err := svc.Generate(student.ID, course.ID, 95)
	require.NoError(t, err)

	_, err = svc.Generate(student.ID, course.ID, 95)
	assert.ErrorIs(t, err, util.ErrCertificateExists)
}

func TestCertificateCodeUniqueness(t *testing.T) {
	db := newTestDB(t)
	svc := newCertificateService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	student := createTestUser(t, db, "student@example.com", model.RoleStudent)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		course := createTestCourse(t, db, teacher.ID)
		cert, err := svc.Generate(student.ID, course.ID, 75)
		require.NoError(t, err)
		assert.False(t, seen[cert.CertificateCode], "duplicate code %s", cert.CertificateCode)
		seen[cert.CertificateCode] = true
	}
}

func TestCertificateCodeGeneration(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		code := model.GenerateUUID()
		require.Len(t, code, 36)
		_, dup := seen[code]
		require.Falsef(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}

func TestCertificateVerify(t *testing.T) {
	db := newTestDB(t)
	svc := newCertificateService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	course := createTestCourse(t, db, teacher.ID)

	cert, err := svc.Generate(student.ID, course.ID, 63)
	require.NoError(t, err)

	found, err := svc.Verify(cert.CertificateCode)
	require.NoError(t, err)
	assert.Equal(t, cert.ID, found.ID)
	assert.Equal(t, "QONIQARLI", found.Grade)

	_, err = svc.Verify("no-such-code")
	assert.ErrorIs(t, err, util.ErrCertificateNotFound)
}
