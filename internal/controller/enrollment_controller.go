package controller

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

// swagger:model EnrollRequest
type EnrollRequest struct {
	CourseID  uint  `json:"courseId" binding:"required"`
	StudentID *uint `json:"studentId"`
}

// Enroll godoc
// @Summary Enroll in a course
// @Description Students enroll themselves; teachers and admins may enroll another student.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body EnrollRequest true "enrollment payload"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	studentID := claims.UserID
	if req.StudentID != nil && (claims.Role == model.RoleTeacher || claims.Role == model.RoleAdmin) {
		studentID = *req.StudentID
	}

	enrollment, err := c.EnrollmentService.Enroll(studentID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound), errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAlreadyEnrolled):
			util.Conflict(ctx, "already enrolled in this course")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, enrollment)
}

// ListByStudent godoc
// @Summary List a student's enrollments
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student id"
// @Success 200 {object} util.Response{data=[]model.Enrollment}
// @Router /api/enrollments/student/{id} [get]
func (c *EnrollmentController) ListByStudent(ctx *gin.Context) {
	enrollments, err := c.EnrollmentService.ListByStudent(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, enrollments)
}

// ListByCourse godoc
// @Summary List a course's enrollments
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response{data=[]model.Enrollment}
// @Router /api/enrollments/course/{id} [get]
func (c *EnrollmentController) ListByCourse(ctx *gin.Context) {
	enrollments, err := c.EnrollmentService.ListByCourse(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, enrollments)
}

// swagger:model ProgressRequest
type ProgressRequest struct {
	Progress float64 `json:"progress" binding:"min=0,max=100"`
}

// UpdateProgress godoc
// @Summary Report course progress
// @Description Reaching 100 marks the enrollment COMPLETED.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "enrollment id"
// @Param body body ProgressRequest true "progress payload"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/enrollments/{id}/progress [put]
func (c *EnrollmentController) UpdateProgress(ctx *gin.Context) {
	var req ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.UpdateProgress(util.ParseUintOrZero(ctx.Param("id")), req.Progress)
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, enrollment)
}

// Drop godoc
// @Summary Drop an active enrollment
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "enrollment id"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 404 {object} util.Response
// @Router /api/enrollments/{id}/drop [post]
func (c *EnrollmentController) Drop(ctx *gin.Context) {
	enrollment, err := c.EnrollmentService.Drop(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, enrollment)
}
