package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"chatop/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUploads_ServesStoredFiles(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("png bytes")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rental_42_1714550400000.png"), payload, 0o644))

	cfg := &config.Config{}
	cfg.Upload = config.UploadConfig{Dir: dir, URL: "/uploads"}

	e := echo.New()
	require.NoError(t, registerUploads(e, cfg))

	req := httptest.NewRequest(http.MethodGet, "/uploads/rental_42_1714550400000.png", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payload, rec.Body.Bytes())
}

func TestRegisterUploads_UnknownFile(t *testing.T) {
	cfg := &config.Config{}
	cfg.Upload = config.UploadConfig{Dir: t.TempDir(), URL: "/uploads"}

	e := echo.New()
	require.NoError(t, registerUploads(e, cfg))

	req := httptest.NewRequest(http.MethodGet, "/uploads/missing.png", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
