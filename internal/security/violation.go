package security

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/elnormous/contenttype"

	"github.com/supafox/supafox/internal/errors"
	"github.com/supafox/supafox/internal/logging"
)

const maxReportBytes = 64 << 10

var (
	cspReportMediaType = contenttype.NewMediaType("application/csp-report")
	reportsMediaType   = contenttype.NewMediaType("application/reports+json")
	jsonMediaType      = contenttype.NewMediaType("application/json")
)

// Violation is the part of a CSP report worth logging.
type Violation struct {
	DocumentURI        string
	Referrer           string
	ViolatedDirective  string
	EffectiveDirective string
	BlockedURI         string
	SourceFile         string
	LineNumber         int
	ColumnNumber       int
	StatusCode         int
}

// legacyReport is the report-uri body, sent as application/csp-report.
type legacyReport struct {
	CSPReport struct {
		DocumentURI        string `json:"document-uri"`
		Referrer           string `json:"referrer"`
		ViolatedDirective  string `json:"violated-directive"`
		EffectiveDirective string `json:"effective-directive"`
		OriginalPolicy     string `json:"original-policy"`
		BlockedURI         string `json:"blocked-uri"`
		StatusCode         int    `json:"status-code"`
		LineNumber         int    `json:"line-number"`
		ColumnNumber       int    `json:"column-number"`
		SourceFile         string `json:"source-file"`
	} `json:"csp-report"`
}

// reportingAPIReport is one entry of a Reporting API batch.
type reportingAPIReport struct {
	Type string `json:"type"`
	URL  string `json:"url"`
	Body struct {
		DocumentURL        string `json:"documentURL"`
		Referrer           string `json:"referrer"`
		EffectiveDirective string `json:"effectiveDirective"`
		BlockedURL         string `json:"blockedURL"`
		SourceFile         string `json:"sourceFile"`
		LineNumber         int    `json:"lineNumber"`
		ColumnNumber       int    `json:"columnNumber"`
		StatusCode         int    `json:"statusCode"`
	} `json:"body"`
}

// ParseViolations decodes a report body in either the report-uri or the
// Reporting API format. Non-CSP Reporting API entries are skipped.
func ParseViolations(mediaType contenttype.MediaType, body []byte) ([]Violation, error) {
	if mediaType.Matches(reportsMediaType) {
		var batch []reportingAPIReport
		if err := json.Unmarshal(body, &batch); err != nil {
			return nil, err
		}
		out := make([]Violation, 0, len(batch))
		for _, r := range batch {
			if r.Type != "csp-violation" {
				continue
			}
			out = append(out, Violation{
				DocumentURI:        r.Body.DocumentURL,
				Referrer:           r.Body.Referrer,
				ViolatedDirective:  r.Body.EffectiveDirective,
				EffectiveDirective: r.Body.EffectiveDirective,
				BlockedURI:         r.Body.BlockedURL,
				SourceFile:         r.Body.SourceFile,
				LineNumber:         r.Body.LineNumber,
				ColumnNumber:       r.Body.ColumnNumber,
				StatusCode:         r.Body.StatusCode,
			})
		}
		return out, nil
	}

	var report legacyReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, err
	}
	r := report.CSPReport
	return []Violation{{
		DocumentURI:        r.DocumentURI,
		Referrer:           r.Referrer,
		ViolatedDirective:  r.ViolatedDirective,
		EffectiveDirective: r.EffectiveDirective,
		BlockedURI:         r.BlockedURI,
		SourceFile:         r.SourceFile,
		LineNumber:         r.LineNumber,
		ColumnNumber:       r.ColumnNumber,
		StatusCode:         r.StatusCode,
	}}, nil
}

// ViolationHandler accepts CSP violation reports and logs them as warnings.
func ViolationHandler(logger logging.Logger) http.HandlerFunc {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	logger = logger.WithComponent("csp")

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		mediaType, err := contenttype.GetMediaType(r)
		if err != nil || !(mediaType.Matches(cspReportMediaType) ||
			mediaType.Matches(reportsMediaType) || mediaType.Matches(jsonMediaType)) {
			http.Error(w, "Unsupported Media Type", http.StatusUnsupportedMediaType)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxReportBytes))
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		violations, err := ParseViolations(mediaType, body)
		if err != nil {
			logger.Warn(r.Context(),
				errors.NewSecurityError("CSP_REPORT_PARSE_ERROR", "failed to parse CSP violation report"),
				"CSP: Failed to parse violation report",
				"ip", ClientIP(r))
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		for _, v := range violations {
			logger.Warn(r.Context(),
				errors.NewSecurityError("CSP_VIOLATION", "content security policy violation"),
				"CSP: Policy violation detected",
				"document_uri", v.DocumentURI,
				"violated_directive", v.ViolatedDirective,
				"blocked_uri", v.BlockedURI,
				"source_file", v.SourceFile,
				"line_number", v.LineNumber,
				"ip", ClientIP(r))
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
