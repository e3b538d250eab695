package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lapor-desu/api-go/models"
	"github.com/lapor-desu/api-go/utils"
	"gorm.io/gorm"
)

type ReportController struct {
	DB       *gorm.DB
	Uploader *Uploader
}

func NewReportController(db *gorm.DB, uploader *Uploader) *ReportController {
	return &ReportController{DB: db, Uploader: uploader}
}

// ListReports godoc
// @Summary List all reports as a GeoJSON FeatureCollection
// @Tags reports
// @Produce json
// @Success 200 {object} GeoJSONFeatureCollection
// @Router /reports [get]
func (rc *ReportController) ListReports(c *gin.Context) {
	var reports []models.Report
	if err := rc.DB.Preload("User").Preload("Category").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	features := make([]GeoJSONFeature, 0, len(reports))
	for _, r := range reports {
		features = append(features, newGeoJSONFeature(r))
	}

	c.JSON(http.StatusOK, GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	})
}

// GetReport godoc
// @Summary Get a single report
// @Tags reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} ReportResponse
// @Router /reports/{id} [get]
func (rc *ReportController) GetReport(c *gin.Context) {
	report, ok := rc.findReport(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newReportResponse(*report))
}

// CreateReport godoc
// @Summary Submit a new report
// @Description Accepts multipart form data with an optional image part, or a JSON body with an optional image_url
// @Tags reports
// @Accept json
// @Accept mpfd
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /reports [post]
func (rc *ReportController) CreateReport(c *gin.Context) {
	user := utils.GetUser(c)
	input := bindReportInput(c)

	if missing := input.missingFields(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field(s) missing: " + strings.Join(missing, ", ")})
		return
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(*input.Latitude), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid value for latitude"})
		return
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(*input.Longitude), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid value for longitude"})
		return
	}
	categoryID, err := strconv.Atoi(strings.TrimSpace(*input.CategoryID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid value for category_id"})
		return
	}

	report := models.Report{
		Title:      strings.TrimSpace(*input.Title),
		Latitude:   latitude,
		Longitude:  longitude,
		CategoryID: uint(categoryID),
		UserID:     user.ID,
		Status:     models.StatusPending,
	}
	if input.Description != nil {
		report.Description = strings.TrimSpace(*input.Description)
	}

	if input.File != nil {
		url, err := rc.Uploader.Upload(input.File)
		if err != nil {
			c.JSON(uploadErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		report.ImageURL = &url
	} else if input.ImageURL != nil {
		if raw := strings.TrimSpace(*input.ImageURL); raw != "" {
			report.ImageURL = &raw
		}
	}

	tx := rc.DB.Begin()
	if err := tx.Create(&report).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report = rc.reloadWithRelations(report)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Laporan diterima desu!",
		"data":    newReportResponse(report),
	})
}

// UpdateReport godoc
// @Summary Partially update a report
// @Description Applies any subset of image, title, description and status; unknown status values are ignored
// @Tags reports
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} map[string]interface{}
// @Router /reports/{id} [patch]
func (rc *ReportController) UpdateReport(c *gin.Context) {
	report, ok := rc.findReport(c)
	if !ok {
		return
	}

	input := bindReportInput(c)
	updates := map[string]interface{}{}

	if input.File != nil {
		url, err := rc.Uploader.Upload(input.File)
		if err != nil {
			c.JSON(uploadErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		updates["image_url"] = url
	} else if input.ImageURL != nil {
		// A blank image_url keeps the existing image
		if raw := strings.TrimSpace(*input.ImageURL); raw != "" {
			updates["image_url"] = raw
		}
	}

	if input.Title != nil {
		updates["title"] = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		updates["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Status != nil && models.ValidStatus(*input.Status) {
		updates["status"] = *input.Status
	}

	// The update timestamp refreshes on every call, even a no-op patch
	updates["updated_at"] = time.Now()

	tx := rc.DB.Begin()
	if err := tx.Model(report).Updates(updates).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	*report = rc.reloadWithRelations(*report)

	c.JSON(http.StatusOK, gin.H{
		"message": "Data berhasil diupdate desu!",
		"data":    newReportResponse(*report),
	})
}

// DeleteReport godoc
// @Summary Permanently delete a report
// @Tags reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} map[string]interface{}
// @Router /reports/{id} [delete]
func (rc *ReportController) DeleteReport(c *gin.Context) {
	report, ok := rc.findReport(c)
	if !ok {
		return
	}

	tx := rc.DB.Begin()
	if err := tx.Delete(report).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Laporan berhasil dihapus selamanya!"})
}

// reloadWithRelations re-reads the row with its user and category attached
// for the response. If the re-read fails the record we already hold is
// returned unchanged instead of serializing zero-value relations.
func (rc *ReportController) reloadWithRelations(report models.Report) models.Report {
	var reloaded models.Report
	if err := rc.DB.Preload("User").Preload("Category").First(&reloaded, report.ID).Error; err != nil {
		return report
	}
	return reloaded
}

// findReport resolves the :id path parameter to a report row with its user
// and category preloaded. On failure it writes the 404 response itself.
func (rc *ReportController) findReport(c *gin.Context) (*models.Report, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return nil, false
	}

	var report models.Report
	if err := rc.DB.Preload("User").Preload("Category").First(&report, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return nil, false
	}

	return &report, true
}

func uploadErrorStatus(err error) int {
	if errors.Is(err, ErrStorageUnavailable) || errors.Is(err, ErrNoFileProvided) || errors.Is(err, ErrUnsupportedMediaType) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
