package controller

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ForumController struct {
	ForumService *service.ForumService
}

func NewForumController(forumService *service.ForumService) *ForumController {
	return &ForumController{ForumService: forumService}
}

// swagger:model ForumRequest
type ForumRequest struct {
	CourseID    *uint  `json:"courseId"`
	ModuleID    *uint  `json:"moduleId"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// CreateForum godoc
// @Summary Create a forum scoped to a course or module
// @Tags forums
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ForumRequest true "forum payload"
// @Success 201 {object} util.Response{data=model.Forum}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/forums [post]
func (c *ForumController) CreateForum(ctx *gin.Context) {
	var req ForumRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.CourseID == nil && req.ModuleID == nil {
		util.BadRequest(ctx, "either courseId or moduleId is required")
		return
	}

	forum := &model.Forum{
		CourseID:    req.CourseID,
		ModuleID:    req.ModuleID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := c.ForumService.CreateForum(forum); err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound), errors.Is(err, util.ErrModuleNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, forum)
}

// GetForum godoc
// @Summary Get a forum
// @Tags forums
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "forum id"
// @Success 200 {object} util.Response{data=model.Forum}
// @Failure 404 {object} util.Response
// @Router /api/forums/{id} [get]
func (c *ForumController) GetForum(ctx *gin.Context) {
	forum, err := c.ForumService.GetForum(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrForumNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, forum)
}

// ListForums godoc
// @Summary List forums by course or module
// @Tags forums
// @Produce json
// @Security ApiKeyAuth
// @Param courseId query int false "course id"
// @Param moduleId query int false "module id"
// @Success 200 {object} util.Response{data=[]model.Forum}
// @Failure 400 {object} util.Response
// @Router /api/forums [get]
func (c *ForumController) ListForums(ctx *gin.Context) {
	if v := ctx.Query("courseId"); v != "" {
		forums, err := c.ForumService.ListByCourse(util.ParseUintOrZero(v))
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, forums)
		return
	}
	if v := ctx.Query("moduleId"); v != "" {
		forums, err := c.ForumService.ListByModule(util.ParseUintOrZero(v))
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, forums)
		return
	}
	util.BadRequest(ctx, "courseId or moduleId query parameter is required")
}

// DeleteForum godoc
// @Summary Delete a forum and all its posts
// @Tags forums
// @Security ApiKeyAuth
// @Param id path int true "forum id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/forums/{id} [delete]
func (c *ForumController) DeleteForum(ctx *gin.Context) {
	if err := c.ForumService.DeleteForum(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrForumNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}

// swagger:model PostRequest
type PostRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content" binding:"required"`
	AttachmentURL string `json:"attachmentUrl"`
}

// CreatePost godoc
// @Summary Create a top-level post in a forum
// @Tags forums
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "forum id"
// @Param body body PostRequest true "post payload"
// @Success 201 {object} util.Response{data=model.ForumPost}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/forums/{id}/posts [post]
func (c *ForumController) CreatePost(ctx *gin.Context) {
	var req PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	post, err := c.ForumService.CreatePost(util.ParseUintOrZero(ctx.Param("id")), claims.UserID, req.Title, req.Content, req.AttachmentURL)
	if err != nil {
		if errors.Is(err, util.ErrForumNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, post)
}

// ListPosts godoc
// @Summary List a forum's top-level posts, newest first
// @Tags forums
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "forum id"
// @Success 200 {object} util.Response{data=[]model.ForumPost}
// @Failure 404 {object} util.Response
// @Router /api/forums/{id}/posts [get]
func (c *ForumController) ListPosts(ctx *gin.Context) {
	posts, err := c.ForumService.ListPosts(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrForumNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, posts)
}

// CreateReply godoc
// @Summary Reply to a post
// @Tags forums
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "parent post id"
// @Param body body PostRequest true "reply payload"
// @Success 201 {object} util.Response{data=model.ForumPost}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/posts/{id}/replies [post]
func (c *ForumController) CreateReply(ctx *gin.Context) {
	var req PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	reply, err := c.ForumService.CreateReply(util.ParseUintOrZero(ctx.Param("id")), claims.UserID, req.Content, req.AttachmentURL)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPostNotFound), errors.Is(err, util.ErrForumNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, reply)
}

// ListReplies godoc
// @Summary List a post's direct replies, oldest first
// @Tags forums
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "post id"
// @Success 200 {object} util.Response{data=[]model.ForumPost}
// @Failure 404 {object} util.Response
// @Router /api/posts/{id}/replies [get]
func (c *ForumController) ListReplies(ctx *gin.Context) {
	replies, err := c.ForumService.ListReplies(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, replies)
}

// DeletePost godoc
// @Summary Delete a post and its whole reply tree
// @Tags forums
// @Security ApiKeyAuth
// @Param id path int true "post id"
// @Success 204
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/posts/{id} [delete]
func (c *ForumController) DeletePost(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	post, err := c.ForumService.GetPost(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	if post.AuthorID != claims.UserID && claims.Role != model.RoleTeacher && claims.Role != model.RoleAdmin {
		util.Forbidden(ctx)
		return
	}

	if err := c.ForumService.DeletePost(post.ID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
