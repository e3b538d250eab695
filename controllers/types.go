package controllers

import (
	"time"

	"github.com/lapor-desu/api-go/models"
)

// ReportResponse is the flattened wire shape of a report. The owning user and
// category are denormalized into it; when a related row is missing the
// documented fallbacks apply ("Anonymous", "General", null icon).
type ReportResponse struct {
	ID           uint    `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	ImageURL     *string `json:"image_url"`
	Status       string  `json:"status"`
	CreatedAt    *string `json:"created_at"`
	UpdatedAt    *string `json:"updated_at"`
	UserID       uint    `json:"user_id"`
	CategoryID   uint    `json:"category_id"`
	ReporterName string  `json:"reporter_name"`
	CategoryName string  `json:"category_name"`
	CategoryIcon *string `json:"category_icon"`
}

type GeoJSONGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type GeoJSONFeature struct {
	Type       string          `json:"type"`
	Geometry   GeoJSONGeometry `json:"geometry"`
	Properties ReportResponse  `json:"properties"`
}

type GeoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []GeoJSONFeature `json:"features"`
}

func isoTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func newReportResponse(r models.Report) ReportResponse {
	resp := ReportResponse{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		ImageURL:     r.ImageURL,
		Status:       r.Status,
		CreatedAt:    isoTimestamp(r.CreatedAt),
		UpdatedAt:    isoTimestamp(r.UpdatedAt),
		UserID:       r.UserID,
		CategoryID:   r.CategoryID,
		ReporterName: "Anonymous",
		CategoryName: "General",
	}

	if r.User.ID != 0 {
		resp.ReporterName = r.User.Name
	}
	if r.Category.ID != 0 {
		resp.CategoryName = r.Category.Name
		resp.CategoryIcon = r.Category.IconURL
	}

	return resp
}

func newGeoJSONFeature(r models.Report) GeoJSONFeature {
	return GeoJSONFeature{
		Type: "Feature",
		Geometry: GeoJSONGeometry{
			Type: "Point",
			// GeoJSON axis order is longitude first
			Coordinates: []float64{r.Longitude, r.Latitude},
		},
		Properties: newReportResponse(r),
	}
}
