package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForumCreateScopes(t *testing.T) {
	db := newTestDB(t)
	svc := newForumService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	course := createTestCourse(t, db, teacher.ID)
	module := createTestModule(t, db, course.ID, 1)

	courseForum := &model.Forum{CourseID: &course.ID, Title: "Course talk"}
	require.NoError(t, svc.CreateForum(courseForum))

	moduleForum := &model.Forum{ModuleID: &module.ID, Title: "Module talk"}
	require.NoError(t, svc.CreateForum(moduleForum))

	missing := uint(9999)
	assert.ErrorIs(t, svc.CreateForum(&model.Forum{CourseID: &missing, Title: "x"}), util.ErrCourseNotFound)
	assert.ErrorIs(t, svc.CreateForum(&model.Forum{ModuleID: &missing, Title: "x"}), util.ErrModuleNotFound)

	byCourse, err := svc.ListByCourse(course.ID)
	require.NoError(t, err)
	assert.Len(t, byCourse, 1)
	byModule, err := svc.ListByModule(module.ID)
	require.NoError(t, err)
	assert.Len(t, byModule, 1)
}

func TestForumPostOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := newForumService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	author := createTestUser(t, db, "author@example.com", model.RoleStudent)
	course := createTestCourse(t, db, teacher.ID)

	forum := &model.Forum{CourseID: &course.ID, Title: "General"}
	require.NoError(t, svc.CreateForum(forum))

	first, err := svc.CreatePost(forum.ID, author.ID, "first", "body", "")
	require.NoError(t, err)
	second, err := svc.CreatePost(forum.ID, author.ID, "second", "body", "")
	require.NoError(t, err)

	// Force distinct timestamps; sqlite stores them as written.
	require.NoError(t, db.Model(first).Update("created_at", "2026-01-01 10:00:00").Error)
	require.NoError(t, db.Model(second).Update("created_at", "2026-01-02 10:00:00").Error)

	posts, err := svc.ListPosts(forum.ID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Title)

	r1, err := svc.CreateReply(first.ID, author.ID, "reply one", "")
	require.NoError(t, err)
	r2, err := svc.CreateReply(first.ID, author.ID, "reply two", "")
	require.NoError(t, err)
	require.NoError(t, db.Model(r1).Update("created_at", "2026-01-03 10:00:00").Error)
	require.NoError(t, db.Model(r2).Update("created_at", "2026-01-04 10:00:00").Error)

	replies, err := svc.ListReplies(first.ID)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, "reply one", replies[0].Content)
}

func TestForumReplyNotifiesParentAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := newForumService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	author := createTestUser(t, db, "author@example.com", model.RoleStudent)
	replier := createTestUser(t, db, "replier@example.com", model.RoleStudent)
	course := createTestCourse(t, db, teacher.ID)

	forum := &model.Forum{CourseID: &course.ID, Title: "General"}
	require.NoError(t, svc.CreateForum(forum))

	post, err := svc.CreatePost(forum.ID, author.ID, "question", "body", "")
	require.NoError(t, err)

	// Self-replies stay silent.
	_, err = svc.CreateReply(post.ID, author.ID, "my own addendum", "")
	require.NoError(t, err)
	var count int64
	db.Model(&model.Notification{}).Where("user_id = ?", author.ID).Count(&count)
	assert.Zero(t, count)

	_, err = svc.CreateReply(post.ID, replier.ID, "an answer", "")
	require.NoError(t, err)
	var notifications []model.Notification
	require.NoError(t, db.Where("user_id = ?", author.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationForumReply, notifications[0].Type)
}

func TestForumDeletePostCascadesTree(t *testing.T) {
	db := newTestDB(t)
	svc := newForumService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	author := createTestUser(t, db, "author@example.com", model.RoleStudent)
	course := createTestCourse(t, db, teacher.ID)

	forum := &model.Forum{CourseID: &course.ID, Title: "General"}
	require.NoError(t, svc.CreateForum(forum))

	root, err := svc.CreatePost(forum.ID, author.ID, "root", "body", "")
	require.NoError(t, err)
	keep, err := svc.CreatePost(forum.ID, author.ID, "keep", "body", "")
	require.NoError(t, err)

	child, err := svc.CreateReply(root.ID, author.ID, "child", "")
	require.NoError(t, err)
	grandchild, err := svc.CreateReply(child.ID, author.ID, "grandchild", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(root.ID))

	for _, id := range []uint{root.ID, child.ID, grandchild.ID} {
		_, err := svc.GetPost(id)
		assert.ErrorIs(t, err, util.ErrPostNotFound)
	}
	_, err = svc.GetPost(keep.ID)
	assert.NoError(t, err)
}

func TestForumDeleteCascadesPosts(t *testing.T) {
	db := newTestDB(t)
	svc := newForumService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	author := createTestUser(t, db, "author@example.com", model.RoleStudent)
	course := createTestCourse(t, db, teacher.ID)

	forum := &model.Forum{CourseID: &course.ID, Title: "General"}
	require.NoError(t, svc.CreateForum(forum))
	post, err := svc.CreatePost(forum.ID, author.ID, "post", "body", "")
	require.NoError(t, err)
	_, err = svc.CreateReply(post.ID, author.ID, "reply", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteForum(forum.ID))

	_, err = svc.GetForum(forum.ID)
	assert.ErrorIs(t, err, util.ErrForumNotFound)
	var remaining int64
	db.Model(&model.ForumPost{}).Where("forum_id = ?", forum.ID).Count(&remaining)
	assert.Zero(t, remaining)
}
