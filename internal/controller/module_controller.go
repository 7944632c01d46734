package controller

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ModuleController struct {
	ModuleService *service.ModuleService
}

func NewModuleController(moduleService *service.ModuleService) *ModuleController {
	return &ModuleController{ModuleService: moduleService}
}

// swagger:model ModuleRequest
type ModuleRequest struct {
	CourseID    uint   `json:"courseId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	OrderNumber int    `json:"orderNumber"`
}

// Create godoc
// @Summary Create a module in a course
// @Tags modules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ModuleRequest true "module payload"
// @Success 201 {object} util.Response{data=model.Module}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/modules [post]
func (c *ModuleController) Create(ctx *gin.Context) {
	var req ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module := &model.Module{
		Title:       req.Title,
		Description: req.Description,
		OrderNumber: req.OrderNumber,
	}
	if err := c.ModuleService.Create(module, req.CourseID); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, module)
}

// Get godoc
// @Summary Get a module
// @Tags modules
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "module id"
// @Success 200 {object} util.Response{data=model.Module}
// @Failure 404 {object} util.Response
// @Router /api/modules/{id} [get]
func (c *ModuleController) Get(ctx *gin.Context) {
	module, err := c.ModuleService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrModuleNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, module)
}

// ListByCourse godoc
// @Summary List a course's modules in order
// @Tags modules
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path int true "course id"
// @Success 200 {object} util.Response{data=[]model.Module}
// @Failure 404 {object} util.Response
// @Router /api/modules/course/{courseId} [get]
func (c *ModuleController) ListByCourse(ctx *gin.Context) {
	modules, err := c.ModuleService.ListByCourse(util.ParseUintOrZero(ctx.Param("courseId")))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, modules)
}

// Update godoc
// @Summary Update a module (partial)
// @Tags modules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "module id"
// @Param body body service.ModuleUpdate true "fields to change"
// @Success 200 {object} util.Response{data=model.Module}
// @Failure 404 {object} util.Response
// @Router /api/modules/{id} [put]
func (c *ModuleController) Update(ctx *gin.Context) {
	var patch service.ModuleUpdate
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module, err := c.ModuleService.Update(util.ParseUintOrZero(ctx.Param("id")), patch)
	if err != nil {
		if errors.Is(err, util.ErrModuleNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, module)
}

// Delete godoc
// @Summary Delete a module
// @Tags modules
// @Security ApiKeyAuth
// @Param id path int true "module id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/modules/{id} [delete]
func (c *ModuleController) Delete(ctx *gin.Context) {
	if err := c.ModuleService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrModuleNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}
