package controller

import (
	"errors"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VideoLessonController struct {
	LessonService *service.VideoLessonService
}

func NewVideoLessonController(lessonService *service.VideoLessonService) *VideoLessonController {
	return &VideoLessonController{LessonService: lessonService}
}

// Create godoc
// @Summary Create a video lesson for a module
// @Description Each module holds at most one lesson; a second create is rejected.
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.LessonRequest true "lesson payload"
// @Success 201 {object} util.Response{data=model.VideoLesson}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/lessons [post]
func (c *VideoLessonController) Create(ctx *gin.Context) {
	var req service.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.ModuleID == 0 {
		util.BadRequest(ctx, "moduleId is required")
		return
	}

	lesson, err := c.LessonService.Create(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrModuleNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrModuleHasLesson):
			util.Conflict(ctx, "module already has a lesson")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, lesson)
}

// Get godoc
// @Summary Get a video lesson
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response{data=model.VideoLesson}
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [get]
func (c *VideoLessonController) Get(ctx *gin.Context) {
	lesson, err := c.LessonService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, lesson)
}

// List godoc
// @Summary List all video lessons
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.VideoLesson}
// @Router /api/lessons [get]
func (c *VideoLessonController) List(ctx *gin.Context) {
	lessons, err := c.LessonService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// ListByCourse godoc
// @Summary List a course's lessons in module order
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path int true "course id"
// @Success 200 {object} util.Response{data=[]model.VideoLesson}
// @Router /api/lessons/course/{courseId} [get]
func (c *VideoLessonController) ListByCourse(ctx *gin.Context) {
	lessons, err := c.LessonService.ListByCourse(util.ParseUintOrZero(ctx.Param("courseId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// Update godoc
// @Summary Update a video lesson (partial)
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "lesson id"
// @Param body body service.LessonRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.VideoLesson}
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [put]
func (c *VideoLessonController) Update(ctx *gin.Context) {
	var req service.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Update(util.ParseUintOrZero(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, lesson)
}

// Delete godoc
// @Summary Delete a video lesson
// @Tags lessons
// @Security ApiKeyAuth
// @Param id path int true "lesson id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [delete]
func (c *VideoLessonController) Delete(ctx *gin.Context) {
	if err := c.LessonService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}
