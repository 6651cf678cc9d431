package security

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/supafox/supafox/internal/logging"
)

const legacyBody = `{"csp-report":{"document-uri":"https://supafox.dev/legal/terms","violated-directive":"script-src","effective-directive":"script-src","blocked-uri":"inline","line-number":12,"source-file":"https://supafox.dev/legal/terms"}}`

const reportingAPIBody = `[
  {"type":"csp-violation","url":"https://supafox.dev/","body":{"documentURL":"https://supafox.dev/","effectiveDirective":"img-src","blockedURL":"https://evil.example/x.png","lineNumber":3}},
  {"type":"deprecation","url":"https://supafox.dev/","body":{}}
]`

func TestViolationHandler(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		contentType string
		body        string
		wantStatus  int
		wantLogs    int
	}{
		{"legacy report", http.MethodPost, "application/csp-report", legacyBody, http.StatusNoContent, 1},
		{"plain json", http.MethodPost, "application/json; charset=utf-8", legacyBody, http.StatusNoContent, 1},
		{"reporting api batch", http.MethodPost, "application/reports+json", reportingAPIBody, http.StatusNoContent, 1},
		{"wrong method", http.MethodGet, "application/csp-report", "", http.StatusMethodNotAllowed, 0},
		{"wrong media type", http.MethodPost, "text/plain", legacyBody, http.StatusUnsupportedMediaType, 0},
		{"malformed body", http.MethodPost, "application/csp-report", "{", http.StatusBadRequest, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelDebug, Format: "json", Output: &buf})

			req := httptest.NewRequest(tt.method, "/api/csp-report", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()

			ViolationHandler(logger).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			lines := strings.Count(strings.TrimSpace(buf.String()), "\n")
			if buf.Len() > 0 {
				lines++
			}
			assert.Equal(t, tt.wantLogs, lines)
		})
	}
}

func TestViolationHandlerLogsDirective(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelDebug, Format: "json", Output: &buf})

	req := httptest.NewRequest(http.MethodPost, "/api/csp-report", strings.NewReader(legacyBody))
	req.Header.Set("Content-Type", "application/csp-report")
	req.RemoteAddr = "203.0.113.9:4000"
	req.Header.Set("X-Forwarded-For", "198.51.100.7")
	ViolationHandler(logger).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"violated_directive":"script-src"`)
	assert.Contains(t, out, `"ip":"203.0.113.9"`)
	assert.Contains(t, out, `"component":"csp"`)
}
