package service

import (
	"errors"
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type CertificateService struct {
	CertificateRepo  *repository.CertificateRepository
	CourseRepo       *repository.CourseRepository
	UserRepo         *repository.UserRepository
	PortfolioRepo    *repository.PortfolioRepository
	NotificationRepo *repository.NotificationRepository
}

func NewCertificateService(certificateRepo *repository.CertificateRepository, courseRepo *repository.CourseRepository, userRepo *repository.UserRepository, portfolioRepo *repository.PortfolioRepository, notificationRepo *repository.NotificationRepository) *CertificateService {
	return &CertificateService{
		CertificateRepo:  certificateRepo,
		CourseRepo:       courseRepo,
		UserRepo:         userRepo,
		PortfolioRepo:    portfolioRepo,
		NotificationRepo: notificationRepo,
	}
}

// CalculateGrade maps a final score to its grade band.
func CalculateGrade(score float64) string {
	switch {
	case score >= 90:
		return "A'LO"
	case score >= 80:
		return "YAXSHI"
	case score >= 70:
		return "O'RTA"
	case score >= 60:
		return "QONIQARLI"
	default:
		return "QONIQARSIZ"
	}
}

// Generate issues a certificate for a completed course. One certificate per
// (student, course); the unique index rejects a second issuance even under
// concurrent requests.
func (s *CertificateService) Generate(studentID, courseID uint, finalScore float64) (*model.Certificate, error) {
	student, err := s.UserRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	teacherID := course.TeacherID
	cert := &model.Certificate{
		StudentID:       student.ID,
		CourseID:        course.ID,
		CertificateCode: model.GenerateUUID(),
		FinalScore:      finalScore,
		Grade:           CalculateGrade(finalScore),
		IssuedAt:        time.Now(),
		IssuedByID:      &teacherID,
	}

	if err := s.CertificateRepo.Create(cert); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrCertificateExists
		}
		return nil, err
	}

	s.addToPortfolio(cert, course)

	s.NotificationRepo.Create(&model.Notification{
		UserID:      student.ID,
		Title:       "Certificate issued",
		Message:     fmt.Sprintf("You earned a certificate for %q with grade %s", course.Title, cert.Grade),
		Type:        model.NotificationCertificateIssued,
		RelatedLink: "/certificates/verify/" + cert.CertificateCode,
	})

	return cert, nil
}

// addToPortfolio records the certificate as a portfolio achievement.
// Failures here never fail the issuance.
func (s *CertificateService) addToPortfolio(cert *model.Certificate, course *model.Course) {
	portfolio, err := s.PortfolioRepo.FindByStudent(cert.StudentID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return
		}
		portfolio = &model.Portfolio{StudentID: cert.StudentID}
		if err := s.PortfolioRepo.Create(portfolio); err != nil {
			return
		}
	}

	certID := cert.ID
	s.PortfolioRepo.AddItem(&model.PortfolioItem{
		PortfolioID: portfolio.ID,
		Title:       "Certificate: " + course.Title,
		Type:        model.PortfolioItemCertificate,
		ReferenceID: &certID,
	})
}

// Verify is the public certificate lookup by code.
func (s *CertificateService) Verify(code string) (*model.Certificate, error) {
	cert, err := s.CertificateRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCertificateNotFound
		}
		return nil, err
	}
	return cert, nil
}

func (s *CertificateService) ListByStudent(studentID uint) ([]model.Certificate, error) {
	if _, err := s.UserRepo.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return s.CertificateRepo.FindByStudent(studentID)
}
