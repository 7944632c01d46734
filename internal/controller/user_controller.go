package controller

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.UserService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// Get godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	user, err := c.UserService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// ListByRole godoc
// @Summary List users with a given role
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param role path string true "role" Enums(student, teacher, admin)
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/users/role/{role} [get]
func (c *UserController) ListByRole(ctx *gin.Context) {
	users, err := c.UserService.ListByRole(model.UserRole(ctx.Param("role")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// swagger:model CreateUserRequest
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required,oneof=student teacher admin"`
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateUserRequest true "user payload"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      model.UserRole(req.Role),
		Active:    true,
	}
	if err := c.UserService.Create(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Conflict(ctx, "email already registered")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, user)
}

// Update godoc
// @Summary Update a user (partial)
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Param body body service.UserUpdate true "fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	var patch service.UserUpdate
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Update(util.ParseUintOrZero(ctx.Param("id")), patch)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	if err := c.UserService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}
