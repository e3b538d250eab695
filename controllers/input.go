package controllers

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ReportInput is the normalized report payload. Requests may arrive as
// multipart form data (fields plus an optional binary image part) or as a
// JSON body; both are folded into the same shape. Pointer fields distinguish
// "absent" from "present but empty", which the partial update relies on.
type ReportInput struct {
	Title       *string
	Description *string
	Latitude    *string
	Longitude   *string
	CategoryID  *string
	Status      *string
	ImageURL    *string
	File        *multipart.FileHeader
}

func bindReportInput(c *gin.Context) *ReportInput {
	in := &ReportInput{}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		in.Title = postFormValue(c, "title")
		in.Description = postFormValue(c, "description")
		in.Latitude = postFormValue(c, "latitude")
		in.Longitude = postFormValue(c, "longitude")
		in.CategoryID = postFormValue(c, "category_id")
		in.Status = postFormValue(c, "status")
		in.ImageURL = postFormValue(c, "image_url")
		if file, err := c.FormFile("image"); err == nil && file.Filename != "" {
			in.File = file
		}
		return in
	}

	// A malformed or absent JSON body binds as an empty payload; the
	// required-field check reports what is missing.
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		return in
	}

	in.Title = jsonValue(raw, "title")
	in.Description = jsonValue(raw, "description")
	in.Latitude = jsonValue(raw, "latitude")
	in.Longitude = jsonValue(raw, "longitude")
	in.CategoryID = jsonValue(raw, "category_id")
	in.Status = jsonValue(raw, "status")
	in.ImageURL = jsonValue(raw, "image_url")

	return in
}

func postFormValue(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}

// jsonValue coerces a JSON field to its string form. JSON nulls count as
// absent, numbers keep their shortest decimal representation.
func jsonValue(raw map[string]interface{}, key string) *string {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}

	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return nil
	}
	return &s
}

// missingFields lists every absent or blank required field, not just the first.
func (in *ReportInput) missingFields() []string {
	var missing []string
	required := []struct {
		name  string
		value *string
	}{
		{"title", in.Title},
		{"latitude", in.Latitude},
		{"longitude", in.Longitude},
		{"category_id", in.CategoryID},
	}

	for _, f := range required {
		if f.value == nil || strings.TrimSpace(*f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
