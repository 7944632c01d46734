package controller

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReflectionController struct {
	ReflectionService *service.ReflectionService
}

func NewReflectionController(reflectionService *service.ReflectionService) *ReflectionController {
	return &ReflectionController{ReflectionService: reflectionService}
}

// swagger:model AssignmentRequest
type AssignmentRequest struct {
	ModuleID     uint   `json:"moduleId" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	MinWords     int    `json:"minWords"`
	MaxWords     int    `json:"maxWords"`
}

// CreateAssignment godoc
// @Summary Create a reflection assignment for a module
// @Tags reflections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AssignmentRequest true "assignment payload"
// @Success 201 {object} util.Response{data=model.ReflectionAssignment}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/reflections [post]
func (c *ReflectionController) CreateAssignment(ctx *gin.Context) {
	var req AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment := &model.ReflectionAssignment{
		ModuleID:     req.ModuleID,
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		MinWords:     req.MinWords,
		MaxWords:     req.MaxWords,
	}
	if err := c.ReflectionService.CreateAssignment(assignment); err != nil {
		switch {
		case errors.Is(err, util.ErrModuleNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrModuleHasAssignment):
			util.Conflict(ctx, "module already has a reflection assignment")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, assignment)
}

// GetAssignment godoc
// @Summary Get a reflection assignment
// @Tags reflections
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response{data=model.ReflectionAssignment}
// @Failure 404 {object} util.Response
// @Router /api/reflections/{id} [get]
func (c *ReflectionController) GetAssignment(ctx *gin.Context) {
	assignment, err := c.ReflectionService.GetAssignment(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrAssignmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, assignment)
}

// UpdateAssignment godoc
// @Summary Update a reflection assignment (partial)
// @Tags reflections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Param body body service.AssignmentUpdate true "fields to change"
// @Success 200 {object} util.Response{data=model.ReflectionAssignment}
// @Failure 404 {object} util.Response
// @Router /api/reflections/{id} [put]
func (c *ReflectionController) UpdateAssignment(ctx *gin.Context) {
	var patch service.AssignmentUpdate
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment, err := c.ReflectionService.UpdateAssignment(util.ParseUintOrZero(ctx.Param("id")), patch)
	if err != nil {
		if errors.Is(err, util.ErrAssignmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, assignment)
}

// DeleteAssignment godoc
// @Summary Delete a reflection assignment and its submissions
// @Tags reflections
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/reflections/{id} [delete]
func (c *ReflectionController) DeleteAssignment(ctx *gin.Context) {
	if err := c.ReflectionService.DeleteAssignment(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrAssignmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}

// swagger:model DraftRequest
type DraftRequest struct {
	Content       string `json:"content"`
	AttachmentURL string `json:"attachmentUrl"`
}

// SaveDraft godoc
// @Summary Create or update the caller's draft for an assignment
// @Tags reflections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Param body body DraftRequest true "draft content"
// @Success 200 {object} util.Response{data=model.ReflectionSubmission}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/reflections/{id}/submissions [post]
func (c *ReflectionController) SaveDraft(ctx *gin.Context) {
	var req DraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sub, err := c.ReflectionService.SaveDraft(util.ParseUintOrZero(ctx.Param("id")), claims.UserID, req.Content, req.AttachmentURL)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAssignmentNotFound), errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidTransition):
			util.BadRequest(ctx, "submission is no longer editable")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, sub)
}

// UpdateDraft godoc
// @Summary Update a draft submission by id
// @Tags reflections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "submission id"
// @Param body body DraftRequest true "draft content"
// @Success 200 {object} util.Response{data=model.ReflectionSubmission}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/reflections/submissions/{id} [put]
func (c *ReflectionController) UpdateDraft(ctx *gin.Context) {
	var req DraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sub, err := c.ReflectionService.GetSubmission(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrSubmissionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	if sub.StudentID != claims.UserID && claims.Role != model.RoleAdmin {
		util.Forbidden(ctx)
		return
	}

	sub, err = c.ReflectionService.SaveDraft(sub.AssignmentID, sub.StudentID, req.Content, req.AttachmentURL)
	if err != nil {
		if errors.Is(err, util.ErrInvalidTransition) {
			util.BadRequest(ctx, "submission is no longer editable")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, sub)
}

// Submit godoc
// @Summary Submit a draft for grading
// @Description Word count must be within the assignment's bounds.
// @Tags reflections
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "submission id"
// @Success 200 {object} util.Response{data=model.ReflectionSubmission}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/reflections/submissions/{id}/submit [post]
func (c *ReflectionController) Submit(ctx *gin.Context) {
	sub, err := c.ReflectionService.Submit(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubmissionNotFound), errors.Is(err, util.ErrAssignmentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidTransition):
			util.BadRequest(ctx, "submission is not a draft")
		case errors.Is(err, util.ErrWordCountOutOfRange):
			util.BadRequest(ctx, "word count is outside the assignment's bounds")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, sub)
}

// swagger:model GradeRequest
type GradeRequest struct {
	Score    int    `json:"score" binding:"min=0"`
	Feedback string `json:"feedback"`
}

// Grade godoc
// @Summary Grade a submitted reflection
// @Tags reflections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "submission id"
// @Param body body GradeRequest true "grade payload"
// @Success 200 {object} util.Response{data=model.ReflectionSubmission}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/reflections/submissions/{id}/grade [post]
func (c *ReflectionController) Grade(ctx *gin.Context) {
	var req GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sub, err := c.ReflectionService.Grade(util.ParseUintOrZero(ctx.Param("id")), claims.UserID, req.Score, req.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubmissionNotFound), errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidTransition):
			util.BadRequest(ctx, "submission is not awaiting grading")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, sub)
}

// GetSubmission godoc
// @Summary Get a submission
// @Tags reflections
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "submission id"
// @Success 200 {object} util.Response{data=model.ReflectionSubmission}
// @Failure 404 {object} util.Response
// @Router /api/reflections/submissions/{id} [get]
func (c *ReflectionController) GetSubmission(ctx *gin.Context) {
	sub, err := c.ReflectionService.GetSubmission(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrSubmissionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, sub)
}

// ListSubmissions godoc
// @Summary List an assignment's submissions
// @Tags reflections
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response{data=[]model.ReflectionSubmission}
// @Failure 404 {object} util.Response
// @Router /api/reflections/{id}/submissions [get]
func (c *ReflectionController) ListSubmissions(ctx *gin.Context) {
	subs, err := c.ReflectionService.ListSubmissions(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrAssignmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, subs)
}
