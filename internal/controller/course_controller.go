package controller

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// swagger:model CourseRequest
type CourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	TeacherID   *uint  `json:"teacherId"`
}

// Create godoc
// @Summary Create a course
// @Description The authenticated teacher owns the course unless an admin names another teacher.
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CourseRequest true "course payload"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	teacherID := claims.UserID
	if req.TeacherID != nil && claims.Role == model.RoleAdmin {
		teacherID = *req.TeacherID
	}

	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Active:      true,
	}
	if err := c.CourseService.Create(course, teacherID); err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrNotTeacher):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, course)
}

// List godoc
// @Summary List all courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.CourseService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// ListActive godoc
// @Summary List active courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses/active [get]
func (c *CourseController) ListActive(ctx *gin.Context) {
	courses, err := c.CourseService.ListActive()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// Get godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	course, err := c.CourseService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, course)
}

// Update godoc
// @Summary Update a course (partial)
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Param body body service.CourseUpdate true "fields to change"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	var patch service.CourseUpdate
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Update(util.ParseUintOrZero(ctx.Param("id")), patch)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, course)
}

// Delete godoc
// @Summary Delete a course
// @Tags courses
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	if err := c.CourseService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}
