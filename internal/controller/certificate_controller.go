package controller

import (
	"errors"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certificateService *service.CertificateService) *CertificateController {
	return &CertificateController{CertificateService: certificateService}
}

// swagger:model CertificateRequest
type CertificateRequest struct {
	StudentID  uint    `json:"studentId" binding:"required"`
	CourseID   uint    `json:"courseId" binding:"required"`
	FinalScore float64 `json:"finalScore" binding:"min=0,max=100"`
}

// Generate godoc
// @Summary Issue a certificate for a completed course
// @Description One certificate per student and course; the grade is derived from the final score.
// @Tags certificates
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CertificateRequest true "certificate payload"
// @Success 201 {object} util.Response{data=model.Certificate}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/certificates [post]
func (c *CertificateController) Generate(ctx *gin.Context) {
	var req CertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cert, err := c.CertificateService.Generate(req.StudentID, req.CourseID, req.FinalScore)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound), errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrCertificateExists):
			util.Conflict(ctx, "certificate already issued for this course")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, cert)
}

// ListByStudent godoc
// @Summary List a student's certificates
// @Tags certificates
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student id"
// @Success 200 {object} util.Response{data=[]model.Certificate}
// @Failure 404 {object} util.Response
// @Router /api/certificates/student/{id} [get]
func (c *CertificateController) ListByStudent(ctx *gin.Context) {
	certs, err := c.CertificateService.ListByStudent(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, certs)
}

// Verify godoc
// @Summary Verify a certificate by its public code
// @Tags certificates
// @Produce json
// @Param code path string true "certificate code"
// @Success 200 {object} util.Response{data=model.Certificate}
// @Failure 404 {object} util.Response
// @Router /api/certificates/verify/{code} [get]
func (c *CertificateController) Verify(ctx *gin.Context) {
	cert, err := c.CertificateService.Verify(ctx.Param("code"))
	if err != nil {
		if errors.Is(err, util.ErrCertificateNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, cert)
}
