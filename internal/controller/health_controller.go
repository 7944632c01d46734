package controller

import (
	"lms_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB      *gorm.DB
	started time.Time
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db, started: time.Now()}
}

// Health godoc
// @Summary Liveness and database connectivity check
// @Tags health
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	status := "ok"
	dbStatus := "up"

	sqlDB, err := c.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		status = "degraded"
		dbStatus = "down"
	}

	payload := gin.H{
		"status":   status,
		"database": dbStatus,
		"uptime":   time.Since(c.started).String(),
	}
	if status != "ok" {
		util.Error(ctx, 503, "service degraded")
		return
	}
	util.Success(ctx, payload)
}
