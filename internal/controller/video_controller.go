package controller

import (
	"errors"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VideoController struct {
	FileService *service.FileService
}

func NewVideoController(fileService *service.FileService) *VideoController {
	return &VideoController{FileService: fileService}
}

// List godoc
// @Summary List stored videos with metadata and matching PDFs
// @Tags videos
// @Produce json
// @Success 200 {object} util.Response{data=[]service.VideoListItem}
// @Router /api/videos/list [get]
func (c *VideoController) List(ctx *gin.Context) {
	items, err := c.FileService.ListVideos()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// Stream godoc
// @Summary Stream a stored video inline
// @Tags videos
// @Produce video/mp4
// @Param filename path string true "video file name"
// @Success 200 {file} binary
// @Failure 404 {object} util.Response
// @Router /api/videos/stream/{filename} [get]
func (c *VideoController) Stream(ctx *gin.Context) {
	path, err := c.FileService.ResolveVideo(ctx.Param("filename"))
	if err != nil {
		if errors.Is(err, util.ErrInvalidPath) || errors.Is(err, util.ErrFileNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.Header("Content-Type", "video/mp4")
	ctx.Header("Content-Disposition", "inline")
	// http.ServeFile under the hood: range requests work for seeking.
	ctx.File(path)
}

// PDF godoc
// @Summary Download a stored PDF
// @Tags videos
// @Produce application/pdf
// @Param filename path string true "pdf file name"
// @Success 200 {file} binary
// @Failure 404 {object} util.Response
// @Router /api/videos/pdf/{filename} [get]
func (c *VideoController) PDF(ctx *gin.Context) {
	path, err := c.FileService.ResolvePDF(ctx.Param("filename"))
	if err != nil {
		if errors.Is(err, util.ErrInvalidPath) || errors.Is(err, util.ErrFileNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.Header("Content-Type", "application/pdf")
	ctx.FileAttachment(path, ctx.Param("filename"))
}

// swagger:model MetadataRequest
type MetadataRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
}

// SaveMetadata godoc
// @Summary Store sidecar metadata for a video
// @Tags videos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body MetadataRequest true "metadata payload"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/videos/metadata [post]
func (c *VideoController) SaveMetadata(ctx *gin.Context) {
	var req MetadataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	meta := &service.VideoMetadata{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
	}
	if err := c.FileService.SaveMetadata(req.FileName, meta); err != nil {
		if errors.Is(err, util.ErrInvalidPath) {
			util.BadRequest(ctx, "invalid file name")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
