package assets

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsReferencedFiles(t *testing.T) {
	for _, name := range []string{
		"styles.css",
		"js/analytics.js",
		"js/calculator.js",
		"js/reveal.js",
		"js/topbar-scroll.js",
		"js/mobile-menu.js",
		"images/favicon.svg",
		"images/og-image.svg",
	} {
		t.Run(name, func(t *testing.T) {
			info, err := fs.Stat(FS(), name)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestHandler_CacheControl(t *testing.T) {
	tests := []struct {
		name  string
		cache bool
		want  string
	}{
		{"local", false, "no-cache"},
		{"production", true, "public, max-age=3600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Handler(tt.cache).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/styles.css", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Cache-Control"))
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
		})
	}
}

func TestHandler_Missing(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler(false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope.js", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
