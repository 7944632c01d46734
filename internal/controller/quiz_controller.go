package controller

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// Create godoc
// @Summary Create a quiz with questions and options
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuizRequest true "quiz payload"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.ModuleID == 0 || req.Title == "" {
		util.BadRequest(ctx, "moduleId and title are required")
		return
	}

	quiz, err := c.QuizService.Create(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrModuleNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrModuleHasQuiz):
			util.Conflict(ctx, "module already has a quiz")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, quiz)
}

// Get godoc
// @Summary Get a quiz with its questions
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	quiz, err := c.QuizService.GetByID(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, quiz)
}

// List godoc
// @Summary List all quizzes
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/quizzes [get]
func (c *QuizController) List(ctx *gin.Context) {
	quizzes, err := c.QuizService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// Delete godoc
// @Summary Delete a quiz with its questions and options
// @Tags quizzes
// @Security ApiKeyAuth
// @Param id path int true "quiz id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [delete]
func (c *QuizController) Delete(ctx *gin.Context) {
	if err := c.QuizService.Delete(util.ParseUintOrZero(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}

// swagger:model QuizSubmission
type QuizSubmission struct {
	Answers []service.AnswerRequest `json:"answers"`
}

// Submit godoc
// @Summary Submit answers and get the graded attempt
// @Description An empty answer list is an attempt scoring zero. The quiz's attempt limit applies.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz id"
// @Param body body QuizSubmission true "answers"
// @Success 201 {object} util.Response{data=model.QuizAttempt}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/quizzes/{id}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	var req QuizSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	attempt, err := c.QuizService.Submit(util.ParseUintOrZero(ctx.Param("id")), claims.UserID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound), errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAttemptLimitExceeded):
			util.Conflict(ctx, "attempt limit exceeded")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, attempt)
}

// GetAttempts godoc
// @Summary List the caller's attempts for a quiz, newest first
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response{data=[]model.QuizAttempt}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/attempts [get]
func (c *QuizController) GetAttempts(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID := claims.UserID
	if v := ctx.Query("studentId"); v != "" && (claims.Role == model.RoleTeacher || claims.Role == model.RoleAdmin) {
		studentID = util.ParseUintOrZero(v)
	}

	attempts, err := c.QuizService.GetStudentAttempts(util.ParseUintOrZero(ctx.Param("id")), studentID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound), errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, attempts)
}
