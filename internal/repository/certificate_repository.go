package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) Create(cert *model.Certificate) error {
	return r.DB.Create(cert).Error
}

func (r *CertificateRepository) FindByID(id uint) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.Preload("Student").Preload("Course").Preload("IssuedBy").First(&cert, id).Error
	return &cert, err
}

func (r *CertificateRepository) FindByCode(code string) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.Preload("Student").Preload("Course").Preload("IssuedBy").
		Where("certificate_code = ?", code).First(&cert).Error
	return &cert, err
}

func (r *CertificateRepository) FindByStudent(studentID uint) ([]model.Certificate, error) {
	var certs []model.Certificate
	err := r.DB.Preload("Course").Where("student_id = ?", studentID).Order("issued_at DESC").Find(&certs).Error
	return certs, err
}

func (r *CertificateRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Certificate{}, id).Error
}
