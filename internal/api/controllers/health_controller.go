package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"planventure/internal/models/db_models"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{
		db: db,
	}
}

// Home godoc
// @Summary API welcome
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthController) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to Planventure API"})
}

// Health godoc
// @Summary Health check
// @Description Reports API and database status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	dbStatus := "connected"
	var usersCount int64
	if err := h.db.WithContext(c.Request.Context()).
		Model(&db_models.User{}).
		Count(&usersCount).Error; err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"database":    dbStatus,
		"users_count": usersCount,
	})
}
