package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lapor-desu/api-go/models"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Index is the service banner, served on both / and /api.
func (hc *HealthController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "Welcome to Lapor Desu API 🚧",
		"status":   "Running",
		"database": "PostgreSQL",
	})
}

// TestDB godoc
// @Summary Check database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test-db [get]
func (hc *HealthController) TestDB(c *gin.Context) {
	var count int64
	if err := hc.DB.Model(&models.Report{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Connection Successful!",
		"total_reports": count,
	})
}
