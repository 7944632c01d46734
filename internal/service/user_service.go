package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// UserUpdate carries a partial update; nil fields leave the stored value
// untouched.
type UserUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Active    *bool   `json:"active"`
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListAll() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

func (s *UserService) ListByRole(role model.UserRole) ([]model.User, error) {
	return s.UserRepo.FindByRole(role)
}

func (s *UserService) Create(user *model.User) error {
	exists, err := s.UserRepo.ExistsByEmail(user.Email)
	if err != nil {
		return err
	}
	if exists {
		return util.ErrEmailRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	if err := s.UserRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return util.ErrEmailRegistered
		}
		return err
	}
	return nil
}

func (s *UserService) Update(id uint, patch UserUpdate) (*model.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Active != nil {
		user.Active = *patch.Active
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.UserRepo.Delete(id)
}
