package controller

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PortfolioController struct {
	PortfolioService *service.PortfolioService
}

func NewPortfolioController(portfolioService *service.PortfolioService) *PortfolioController {
	return &PortfolioController{PortfolioService: portfolioService}
}

// Get godoc
// @Summary Get the caller's portfolio with its items
// @Tags portfolio
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Portfolio}
// @Router /api/portfolio [get]
func (c *PortfolioController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	portfolio, err := c.PortfolioService.GetOrCreate(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, portfolio)
}

// swagger:model PortfolioItemRequest
type PortfolioItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required,oneof=REFLECTION CERTIFICATE QUIZ_RESULT CUSTOM"`
	ReferenceID *uint  `json:"referenceId"`
	FileURL     string `json:"fileUrl"`
}

// AddItem godoc
// @Summary Add an item to the caller's portfolio
// @Tags portfolio
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body PortfolioItemRequest true "item payload"
// @Success 201 {object} util.Response{data=model.PortfolioItem}
// @Failure 400 {object} util.Response
// @Router /api/portfolio/items [post]
func (c *PortfolioController) AddItem(ctx *gin.Context) {
	var req PortfolioItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	item, err := c.PortfolioService.AddItem(claims.UserID, &model.PortfolioItem{
		Title:       req.Title,
		Description: req.Description,
		Type:        model.PortfolioItemType(req.Type),
		ReferenceID: req.ReferenceID,
		FileURL:     req.FileURL,
	})
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, item)
}

// RemoveItem godoc
// @Summary Remove an item from the caller's portfolio
// @Tags portfolio
// @Security ApiKeyAuth
// @Param id path int true "item id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/portfolio/items/{id} [delete]
func (c *PortfolioController) RemoveItem(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.PortfolioService.RemoveItem(claims.UserID, util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		switch {
		case errors.Is(err, util.ErrItemNotFound), errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}
