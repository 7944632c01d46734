package service

import (
	"errors"
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type ForumService struct {
	ForumRepo        *repository.ForumRepository
	CourseRepo       *repository.CourseRepository
	ModuleRepo       *repository.ModuleRepository
	NotificationRepo *repository.NotificationRepository
	DB               *gorm.DB
}

func NewForumService(forumRepo *repository.ForumRepository, courseRepo *repository.CourseRepository, moduleRepo *repository.ModuleRepository, notificationRepo *repository.NotificationRepository, db *gorm.DB) *ForumService {
	return &ForumService{
		ForumRepo:        forumRepo,
		CourseRepo:       courseRepo,
		ModuleRepo:       moduleRepo,
		NotificationRepo: notificationRepo,
		DB:               db,
	}
}

// CreateForum validates the scope reference (course or module).
func (s *ForumService) CreateForum(forum *model.Forum) error {
	if forum.CourseID != nil {
		if _, err := s.CourseRepo.FindByID(*forum.CourseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrCourseNotFound
			}
			return err
		}
	}
	if forum.ModuleID != nil {
		if _, err := s.ModuleRepo.FindByID(*forum.ModuleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrModuleNotFound
			}
			return err
		}
	}
	return s.ForumRepo.Create(forum)
}

func (s *ForumService) GetForum(id uint) (*model.Forum, error) {
	forum, err := s.ForumRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrForumNotFound
		}
		return nil, err
	}
	return forum, nil
}

func (s *ForumService) ListByCourse(courseID uint) ([]model.Forum, error) {
	return s.ForumRepo.FindByCourse(courseID)
}

func (s *ForumService) ListByModule(moduleID uint) ([]model.Forum, error) {
	return s.ForumRepo.FindByModule(moduleID)
}

// DeleteForum removes the forum with every post in it.
func (s *ForumService) DeleteForum(id uint) error {
	if _, err := s.GetForum(id); err != nil {
		return err
	}
	postIDs, err := s.ForumRepo.FindPostIDsByForum(id)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.ForumRepo.DeletePosts(tx, postIDs); err != nil {
			return err
		}
		return s.ForumRepo.Delete(tx, id)
	})
}

// CreatePost adds a top-level post to a forum.
func (s *ForumService) CreatePost(forumID, authorID uint, title, content, attachmentURL string) (*model.ForumPost, error) {
	if _, err := s.GetForum(forumID); err != nil {
		return nil, err
	}

	post := &model.ForumPost{
		ForumID:       forumID,
		AuthorID:      authorID,
		Title:         title,
		Content:       content,
		AttachmentURL: attachmentURL,
	}
	if err := s.ForumRepo.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// CreateReply adds a reply under a parent post and notifies its author.
func (s *ForumService) CreateReply(parentPostID, authorID uint, content, attachmentURL string) (*model.ForumPost, error) {
	parent, err := s.GetPost(parentPostID)
	if err != nil {
		return nil, err
	}
	if _, err := s.GetForum(parent.ForumID); err != nil {
		return nil, err
	}

	reply := &model.ForumPost{
		ForumID:       parent.ForumID,
		AuthorID:      authorID,
		ParentPostID:  &parent.ID,
		Content:       content,
		AttachmentURL: attachmentURL,
	}
	if err := s.ForumRepo.CreatePost(reply); err != nil {
		return nil, err
	}

	if parent.AuthorID != authorID {
		s.NotificationRepo.Create(&model.Notification{
			UserID:      parent.AuthorID,
			Title:       "New reply",
			Message:     "Someone replied to your forum post",
			Type:        model.NotificationForumReply,
			RelatedLink: fmt.Sprintf("/forums/%d/posts/%d", parent.ForumID, parent.ID),
		})
	}

	return reply, nil
}

func (s *ForumService) GetPost(id uint) (*model.ForumPost, error) {
	post, err := s.ForumRepo.FindPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// ListPosts returns a forum's top-level posts newest-first.
func (s *ForumService) ListPosts(forumID uint) ([]model.ForumPost, error) {
	if _, err := s.GetForum(forumID); err != nil {
		return nil, err
	}
	return s.ForumRepo.FindTopLevelPosts(forumID)
}

// ListReplies returns direct replies oldest-first.
func (s *ForumService) ListReplies(postID uint) ([]model.ForumPost, error) {
	if _, err := s.GetPost(postID); err != nil {
		return nil, err
	}
	return s.ForumRepo.FindReplies(postID)
}

// DeletePost removes a post and every descendant reply in one transaction.
// The tree is collected iteratively; the storage engine is not asked to
// cascade.
func (s *ForumService) DeletePost(id uint) error {
	if _, err := s.GetPost(id); err != nil {
		return err
	}

	toDelete := []uint{id}
	frontier := []uint{id}
	for len(frontier) > 0 {
		next := []uint{}
		for _, postID := range frontier {
			children, err := s.ForumRepo.FindReplyIDs(postID)
			if err != nil {
				return err
			}
			next = append(next, children...)
		}
		toDelete = append(toDelete, next...)
		frontier = next
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.ForumRepo.DeletePosts(tx, toDelete)
	})
}
