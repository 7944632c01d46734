package controller

import (
	"errors"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FileController struct {
	FileService *service.FileService
}

func NewFileController(fileService *service.FileService) *FileController {
	return &FileController{FileService: fileService}
}

// UploadVideo godoc
// @Summary Upload a video file
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "video file"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/files/upload/video [post]
func (c *FileController) UploadVideo(ctx *gin.Context) {
	c.upload(ctx, service.FolderVideos)
}

// UploadPDF godoc
// @Summary Upload a PDF file
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "pdf file"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/files/upload/pdf [post]
func (c *FileController) UploadPDF(ctx *gin.Context) {
	c.upload(ctx, service.FolderPDFs)
}

func (c *FileController) upload(ctx *gin.Context, folder string) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	relPath, original, err := c.FileService.Upload(ctx.Request.Context(), file, folder)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidPath):
			util.BadRequest(ctx, "invalid file name")
		case errors.Is(err, util.ErrInvalidFileType):
			util.BadRequest(ctx, "unsupported file type")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"filePath": relPath, "fileName": original})
}

// Delete godoc
// @Summary Delete an uploaded file
// @Description Deleting a missing file succeeds; traversal attempts are rejected.
// @Tags files
// @Produce json
// @Security ApiKeyAuth
// @Param filePath query string true "relative path, e.g. videos/abc.mp4"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/files/delete [delete]
func (c *FileController) Delete(ctx *gin.Context) {
	relPath := ctx.Query("filePath")
	if relPath == "" {
		util.BadRequest(ctx, "filePath is required")
		return
	}

	if err := c.FileService.Delete(ctx.Request.Context(), relPath); err != nil {
		if errors.Is(err, util.ErrInvalidPath) {
			util.BadRequest(ctx, "invalid file path")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
