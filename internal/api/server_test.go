package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Parameter validation runs before any database access, so a nil connection
// is fine here.
func TestScoresHandlerRejectsBadParameters(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"non-numeric min", "/scores?min=abc"},
		{"non-numeric limit", "/scores?limit=ten"},
		{"zero limit", "/scores?limit=0"},
		{"negative limit", "/scores?limit=-5"},
	}

	server := NewServer(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)

			server.ScoresHandler(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
