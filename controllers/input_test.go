package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindReportInputJSON(t *testing.T) {
	c := jsonContext(t, `{
		"title": "Lubang besar",
		"description": "Bahaya",
		"latitude": -6.902481,
		"longitude": 107.61881,
		"category_id": 3,
		"status": null
	}`)

	in := bindReportInput(c)

	require.NotNil(t, in.Title)
	assert.Equal(t, "Lubang besar", *in.Title)
	require.NotNil(t, in.Latitude)
	assert.Equal(t, "-6.902481", *in.Latitude)
	require.NotNil(t, in.Longitude)
	assert.Equal(t, "107.61881", *in.Longitude)
	require.NotNil(t, in.CategoryID)
	assert.Equal(t, "3", *in.CategoryID)
	assert.Nil(t, in.Status, "JSON null counts as absent")
	assert.Nil(t, in.ImageURL)
	assert.Nil(t, in.File)
}

func TestBindReportInputMalformedJSON(t *testing.T) {
	c := jsonContext(t, `{not json`)

	in := bindReportInput(c)

	assert.Equal(t, []string{"title", "latitude", "longitude", "category_id"}, in.missingFields())
}

func TestBindReportInputMultipart(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", "Banjir di Pagarsih"))
	require.NoError(t, w.WriteField("latitude", "-6.924652"))
	require.NoError(t, w.WriteField("longitude", "107.59546"))
	require.NoError(t, w.WriteField("category_id", "2"))
	fw, err := w.CreateFormFile("image", "banjir.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", &buf)
	c.Request.Header.Set("Content-Type", w.FormDataContentType())

	in := bindReportInput(c)

	require.NotNil(t, in.Title)
	assert.Equal(t, "Banjir di Pagarsih", *in.Title)
	assert.Empty(t, in.missingFields())
	require.NotNil(t, in.File)
	assert.Equal(t, "banjir.jpg", in.File.Filename)
	assert.Nil(t, in.Description)
	assert.Nil(t, in.Status)
}

func TestMissingFieldsNamesEveryAbsentField(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"all missing", `{}`, []string{"title", "latitude", "longitude", "category_id"}},
		{"blank counts as missing", `{"title":"  ","latitude":-6.9,"longitude":107.6,"category_id":1}`, []string{"title"}},
		{"partial", `{"title":"x","category_id":1}`, []string{"latitude", "longitude"}},
		{"none missing", `{"title":"x","latitude":-6.9,"longitude":107.6,"category_id":1}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := bindReportInput(jsonContext(t, tt.body))
			assert.Equal(t, tt.want, in.missingFields())
		})
	}
}
