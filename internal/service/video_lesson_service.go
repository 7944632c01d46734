package service

import (
	"errors"
	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type VideoLessonService struct {
	LessonRepo *repository.VideoLessonRepository
	ModuleRepo *repository.ModuleRepository
	Cfg        *config.Config
	DB         *gorm.DB
}

func NewVideoLessonService(lessonRepo *repository.VideoLessonRepository, moduleRepo *repository.ModuleRepository, cfg *config.Config, db *gorm.DB) *VideoLessonService {
	return &VideoLessonService{
		LessonRepo: lessonRepo,
		ModuleRepo: moduleRepo,
		Cfg:        cfg,
		DB:         db,
	}
}

// LessonRequest doubles as create payload and patch: nil fields are left
// untouched on update.
type LessonRequest struct {
	ModuleID     uint    `json:"moduleId"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	VideoURL     *string `json:"videoUrl"`
	VideoType    *string `json:"videoType"`
	Duration     *int    `json:"duration"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Transcript   *string `json:"transcript"`
	PdfURL       *string `json:"pdfUrl"`
	PdfFileName  *string `json:"pdfFileName"`
}

// Create inserts a lesson for a module that does not have one yet. The
// occupancy check runs inside the transaction and the unique index on
// module_id backs it up against concurrent creates.
func (s *VideoLessonService) Create(req LessonRequest) (*model.VideoLesson, error) {
	if _, err := s.ModuleRepo.FindByID(req.ModuleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}

	lesson := &model.VideoLesson{
		ModuleID:  req.ModuleID,
		VideoType: model.VideoTypeURL,
	}
	applyLessonPatch(lesson, req)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.VideoLesson{}).Where("module_id = ?", req.ModuleID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return util.ErrModuleHasLesson
		}
		return tx.Create(lesson).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrModuleHasLesson
		}
		return nil, err
	}

	s.probeDuration(lesson)
	return s.GetByID(lesson.ID)
}

// probeDuration fills in the duration of uploaded videos from the stored
// file. Best effort: a missing file or missing ffmpeg leaves duration as-is.
func (s *VideoLessonService) probeDuration(lesson *model.VideoLesson) {
	if lesson.VideoType != model.VideoTypeUpload || lesson.Duration > 0 || lesson.VideoURL == "" {
		return
	}
	rel, err := util.SanitizeRelativePath(strings.TrimPrefix(lesson.VideoURL, "/"))
	if err != nil {
		return
	}
	info, err := util.ProbeVideo(filepath.Join(s.Cfg.Storage.UploadRoot, rel))
	if err != nil {
		logger.Log.Debug("video probe failed", zap.String("videoUrl", lesson.VideoURL), zap.Error(err))
		return
	}
	if info.Duration > 0 {
		lesson.Duration = int(info.Duration)
		if err := s.LessonRepo.Update(lesson); err != nil {
			logger.Log.Warn("failed to store probed duration", zap.Uint("lessonId", lesson.ID), zap.Error(err))
		}
	}
}

func (s *VideoLessonService) GetByID(id uint) (*model.VideoLesson, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return lesson, nil
}

func (s *VideoLessonService) ListAll() ([]model.VideoLesson, error) {
	return s.LessonRepo.FindAll()
}

func (s *VideoLessonService) ListByCourse(courseID uint) ([]model.VideoLesson, error) {
	return s.LessonRepo.FindByCourseOrdered(courseID)
}

func (s *VideoLessonService) Update(id uint, req LessonRequest) (*model.VideoLesson, error) {
	lesson, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	applyLessonPatch(lesson, req)

	if err := s.LessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *VideoLessonService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.LessonRepo.Delete(id)
}

func applyLessonPatch(lesson *model.VideoLesson, req LessonRequest) {
	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.VideoURL != nil {
		lesson.VideoURL = *req.VideoURL
	}
	if req.VideoType != nil {
		lesson.VideoType = model.VideoType(*req.VideoType)
	}
	if req.Duration != nil {
		lesson.Duration = *req.Duration
	}
	if req.ThumbnailURL != nil {
		lesson.ThumbnailURL = *req.ThumbnailURL
	}
	if req.Transcript != nil {
		lesson.Transcript = *req.Transcript
	}
	if req.PdfURL != nil {
		lesson.PdfURL = *req.PdfURL
	}
	if req.PdfFileName != nil {
		lesson.PdfFileName = *req.PdfFileName
	}
}
