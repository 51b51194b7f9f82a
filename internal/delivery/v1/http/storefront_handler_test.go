package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(jsonRequest(http.MethodGet, "/health", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWhatsApp_NotConfigured(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(jsonRequest(http.MethodGet, "/api/v1/whatsapp", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"config":null}`, rec.Body.String())
}

func TestWhatsApp_Set(t *testing.T) {
	ts := newTestServer(t)
	ts.settings.whatsApp = &domain.WhatsAppConfig{
		ID:              uuid.New(),
		PhoneNumber:     "+237699000000",
		MessageTemplate: "Bonjour",
		IsActive:        true,
		CreatedAt:       time.Now(),
	}

	rec := ts.do(ts.adminRequest(t, http.MethodPost, "/api/v1/whatsapp", `{"phone_number":"+237699000000","message_template":"Bonjour"}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, &usecase.SetWhatsAppReq{PhoneNumber: "+237699000000", MessageTemplate: "Bonjour"}, ts.settings.setReq)

	var resp whatsAppResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Config)
	assert.True(t, resp.Config.IsActive)
}

func TestWhatsApp_SetRequiresAdmin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(jsonRequest(http.MethodPost, "/api/v1/whatsapp", `{"phone_number":"+237699000000"}`))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, ts.settings.setReq)
}

func TestHeroVideo(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(jsonRequest(http.MethodGet, "/api/v1/hero-video", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"video_url":null}`, rec.Body.String())

	ts.settings.video = &domain.HeroVideo{ID: uuid.New(), VideoURL: "https://cdn.example.com/hero.mp4"}
	rec = ts.do(ts.adminRequest(t, http.MethodPost, "/api/v1/hero-video", `{"video_url":"https://cdn.example.com/hero.mp4"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://cdn.example.com/hero.mp4", ts.settings.videoURL)
	assert.JSONEq(t, `{"success":true,"video_url":"https://cdn.example.com/hero.mp4"}`, rec.Body.String())

	rec = ts.do(ts.adminRequest(t, http.MethodDelete, "/api/v1/hero-video", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ts.settings.deleted)
}

func TestTrackVisit(t *testing.T) {
	ts := newTestServer(t)

	req := jsonRequest(http.MethodPost, "/api/v1/visitors/track", "")
	req.RemoteAddr = "10.0.0.5:41234"
	req.Header.Set("X-Forwarded-For", "41.202.207.1")
	req.Header.Set("User-Agent", "Mozilla/5.0")

	rec := ts.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, ts.visitors.tracked)
	assert.Equal(t, "41.202.207.1", ts.visitors.tracked.IPAddress)
	assert.Equal(t, "Mozilla/5.0", ts.visitors.tracked.UserAgent)
}

func TestVisitorStats(t *testing.T) {
	ts := newTestServer(t)
	ts.visitors.stats = &domain.VisitorStats{Today: 3, Week: 12, Total: 240}

	rec := ts.do(jsonRequest(http.MethodGet, "/api/v1/visitors/stats", ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(ts.adminRequest(t, http.MethodGet, "/api/v1/visitors/stats", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"today":3,"week":12,"total":240}`, rec.Body.String())
}

func TestUploadMedia(t *testing.T) {
	ts := newTestServer(t)
	ts.media.urls = []string{"http://localhost:9000/storefront/products/a.png"}

	body, contentType := multipartBody(t, []formFile{{name: "a.png", data: pngHeader}}, map[string]string{"folder": "products"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/media", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+signToken(t, ts.adminID.String(), time.Hour))

	rec := ts.do(req)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "products", ts.media.folder)
	require.Len(t, ts.media.files, 1)
	assert.Equal(t, "image/png", ts.media.files[0].MimeType)
	assert.JSONEq(t, `{"urls":["http://localhost:9000/storefront/products/a.png"]}`, rec.Body.String())
}

func TestUploadMedia_RejectsJSON(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(ts.adminRequest(t, http.MethodPost, "/api/v1/media", `{"files":[]}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, ts.media.files)
}

func TestTrackConversion(t *testing.T) {
	ts := newTestServer(t)

	req := jsonRequest(http.MethodPost, "/api/v1/conversions/AddToCart",
		`{"content_ids":["p-1"],"content_name":"Fauteuil","value":90000,"currency":"XAF","num_items":1}`)
	req.Header.Set("User-Agent", "Mozilla/5.0")

	rec := ts.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	require.NotNil(t, ts.conversions.req)
	assert.Equal(t, usecase.ConversionAddToCart, ts.conversions.req.EventName)
	assert.Equal(t, []string{"p-1"}, ts.conversions.req.ContentIDs)
	assert.Equal(t, int64(90000), ts.conversions.req.Value)
	assert.Equal(t, "Mozilla/5.0", ts.conversions.req.UserAgent)
}

func TestTrackConversion_EmptyBody(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(jsonRequest(http.MethodPost, "/api/v1/conversions/pageview", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.ConversionPageView, ts.conversions.req.EventName)
}

func TestTrackConversion_UnknownEvent(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(jsonRequest(http.MethodPost, "/api/v1/conversions/Lead", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, ts.conversions.req)
}

func TestTrackConversion_UsecaseFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.conversions.err = errors.New("relay down")

	rec := ts.do(jsonRequest(http.MethodPost, "/api/v1/conversions/purchase", `{}`))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
