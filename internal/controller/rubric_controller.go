package controller

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RubricController struct {
	RubricService *service.RubricService
}

func NewRubricController(rubricService *service.RubricService) *RubricController {
	return &RubricController{RubricService: rubricService}
}

// swagger:model RubricRequest
type RubricRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	MaxScore    int                `json:"maxScore"`
	Criteria    []CriterionRequest `json:"criteria"`
}

// swagger:model CriterionRequest
type CriterionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	MaxPoints   int    `json:"maxPoints"`
	OrderNumber int    `json:"orderNumber"`
}

// Create godoc
// @Summary Create a rubric with its criteria
// @Tags rubrics
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body RubricRequest true "rubric payload"
// @Success 201 {object} util.Response{data=model.Rubric}
// @Failure 400 {object} util.Response
// @Router /api/rubrics [post]
func (c *RubricController) Create(ctx *gin.Context) {
	var req RubricRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rubric := &model.Rubric{
		Name:        req.Name,
		Description: req.Description,
		MaxScore:    req.MaxScore,
	}
	for _, cr := range req.Criteria {
		rubric.Criteria = append(rubric.Criteria, model.RubricCriterion{
			Name:        cr.Name,
			Description: cr.Description,
			MaxPoints:   cr.MaxPoints,
			OrderNumber: cr.OrderNumber,
		})
	}

	if err := c.RubricService.Create(rubric); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, rubric)
}

// Get godoc
// @Summary Get a rubric with its ordered criteria
// @Tags rubrics
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "rubric id"
// @Success 200 {object} util.Response{data=model.Rubric}
// @Failure 404 {object} util.Response
// @Router /api/rubrics/{id} [get]
func (c *RubricController) Get(ctx *gin.Context) {
	rubric, err := c.RubricService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrRubricNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, rubric)
}

// List godoc
// @Summary List all rubrics
// @Tags rubrics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Rubric}
// @Router /api/rubrics [get]
func (c *RubricController) List(ctx *gin.Context) {
	rubrics, err := c.RubricService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rubrics)
}

// Update godoc
// @Summary Update a rubric (partial)
// @Tags rubrics
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "rubric id"
// @Param body body service.RubricUpdate true "fields to change"
// @Success 200 {object} util.Response{data=model.Rubric}
// @Failure 404 {object} util.Response
// @Router /api/rubrics/{id} [put]
func (c *RubricController) Update(ctx *gin.Context) {
	var patch service.RubricUpdate
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rubric, err := c.RubricService.Update(util.ParseUintOrZero(ctx.Param("id")), patch)
	if err != nil {
		if errors.Is(err, util.ErrRubricNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, rubric)
}

// Delete godoc
// @Summary Delete a rubric and its criteria
// @Tags rubrics
// @Security ApiKeyAuth
// @Param id path int true "rubric id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/rubrics/{id} [delete]
func (c *RubricController) Delete(ctx *gin.Context) {
	if err := c.RubricService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrRubricNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}

// AddCriterion godoc
// @Summary Add a criterion to a rubric
// @Tags rubrics
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "rubric id"
// @Param body body CriterionRequest true "criterion payload"
// @Success 201 {object} util.Response{data=model.RubricCriterion}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/rubrics/{id}/criteria [post]
func (c *RubricController) AddCriterion(ctx *gin.Context) {
	var req CriterionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	criterion := &model.RubricCriterion{
		Name:        req.Name,
		Description: req.Description,
		MaxPoints:   req.MaxPoints,
		OrderNumber: req.OrderNumber,
	}
	if err := c.RubricService.AddCriterion(util.ParseUintOrZero(ctx.Param("id")), criterion); err != nil {
		if errors.Is(err, util.ErrRubricNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, criterion)
}

// UpdateCriterion godoc
// @Summary Update a criterion (partial)
// @Tags rubrics
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "criterion id"
// @Param body body service.CriterionUpdate true "fields to change"
// @Success 200 {object} util.Response{data=model.RubricCriterion}
// @Failure 404 {object} util.Response
// @Router /api/rubrics/criteria/{id} [put]
func (c *RubricController) UpdateCriterion(ctx *gin.Context) {
	var patch service.CriterionUpdate
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	criterion, err := c.RubricService.UpdateCriterion(util.ParseUintOrZero(ctx.Param("id")), patch)
	if err != nil {
		if errors.Is(err, util.ErrCriterionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, criterion)
}

// DeleteCriterion godoc
// @Summary Delete a criterion
// @Tags rubrics
// @Security ApiKeyAuth
// @Param id path int true "criterion id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/rubrics/criteria/{id} [delete]
func (c *RubricController) DeleteCriterion(ctx *gin.Context) {
	if err := c.RubricService.DeleteCriterion(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrCriterionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}
