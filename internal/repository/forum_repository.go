package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type ForumRepository struct {
	DB *gorm.DB
}

func NewForumRepository(db *gorm.DB) *ForumRepository {
	return &ForumRepository{DB: db}
}

func (r *ForumRepository) Create(forum *model.Forum) error {
	return r.DB.Create(forum).Error
}

func (r *ForumRepository) FindByID(id uint) (*model.Forum, error) {
	var forum model.Forum
	err := r.DB.First(&forum, id).Error
	return &forum, err
}

func (r *ForumRepository) FindByCourse(courseID uint) ([]model.Forum, error) {
	var forums []model.Forum
	err := r.DB.Where("course_id = ?", courseID).Order("id").Find(&forums).Error
	return forums, err
}

func (r *ForumRepository) FindByModule(moduleID uint) ([]model.Forum, error) {
	var forums []model.Forum
	err := r.DB.Where("module_id = ?", moduleID).Order("id").Find(&forums).Error
	return forums, err
}

func (r *ForumRepository) Update(forum *model.Forum) error {
	return r.DB.Save(forum).Error
}

func (r *ForumRepository) Delete(tx *gorm.DB, id uint) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Delete(&model.Forum{}, id).Error
}

func (r *ForumRepository) CreatePost(post *model.ForumPost) error {
	return r.DB.Create(post).Error
}

func (r *ForumRepository) FindPostByID(id uint) (*model.ForumPost, error) {
	var post model.ForumPost
	err := r.DB.Preload("Author").First(&post, id).Error
	return &post, err
}

// FindTopLevelPosts returns a forum's root posts newest-first.
func (r *ForumRepository) FindTopLevelPosts(forumID uint) ([]model.ForumPost, error) {
	var posts []model.ForumPost
	err := r.DB.Preload("Author").
		Where("forum_id = ? AND parent_post_id IS NULL", forumID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// FindReplies returns direct replies to a post oldest-first.
func (r *ForumRepository) FindReplies(postID uint) ([]model.ForumPost, error) {
	var posts []model.ForumPost
	err := r.DB.Preload("Author").
		Where("parent_post_id = ?", postID).
		Order("created_at ASC").
		Find(&posts).Error
	return posts, err
}

func (r *ForumRepository) FindPostIDsByForum(forumID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.ForumPost{}).Where("forum_id = ?", forumID).Pluck("id", &ids).Error
	return ids, err
}

func (r *ForumRepository) FindReplyIDs(postID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.ForumPost{}).Where("parent_post_id = ?", postID).Pluck("id", &ids).Error
	return ids, err
}

func (r *ForumRepository) DeletePosts(tx *gorm.DB, ids []uint) error {
	if tx == nil {
		tx = r.DB
	}
	if len(ids) == 0 {
		return nil
	}
	return tx.Where("id IN ?", ids).Delete(&model.ForumPost{}).Error
}
