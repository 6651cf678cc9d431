package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/supafox/supafox/internal/logging"
	"github.com/supafox/supafox/internal/security"
)

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	write := func(title string, issues []ValidationError) {
		if len(issues) == 0 {
			return
		}
		builder.WriteString(title + ":\n")
		for _, issue := range issues {
			builder.WriteString(fmt.Sprintf("  - %s: %s\n", issue.Field, issue.Message))
			for _, suggestion := range issue.Suggestions {
				builder.WriteString(fmt.Sprintf("      hint: %s\n", suggestion))
			}
		}
	}

	write("Validation errors", vr.Errors)
	write("Validation warnings", vr.Warnings)
	return builder.String()
}

func (vr *ValidationResult) addError(field string, value interface{}, message string, suggestions ...string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Value: value, Message: message, Suggestions: suggestions})
}

func (vr *ValidationResult) addWarning(field string, value interface{}, message string, suggestions ...string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Value: value, Message: message, Suggestions: suggestions})
}

// ValidateConfigWithDetails performs comprehensive validation with detailed feedback
func ValidateConfigWithDetails(config *Config) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	validateServerConfigDetails(&config.Server, result)
	validateSiteConfigDetails(&config.Site, result)
	validateRoutesConfigDetails(config, result)
	validateSecurityConfigDetails(&config.Security, result)
	validateContentConfigDetails(&config.Content, result)
	validateLogConfigDetails(&config.Log, result)

	result.Valid = !result.HasErrors()
	return result
}

func validateServerConfigDetails(config *ServerConfig, result *ValidationResult) {
	if config.Port < 0 || config.Port > 65535 {
		result.addError("server.port", config.Port,
			fmt.Sprintf("port %d is not in valid range 0-65535", config.Port),
			"Use a port between 1024-65535 for non-privileged access",
			"Port 0 allows system to assign an available port")
	} else if config.Port > 0 && config.Port < 1024 {
		result.addWarning("server.port", config.Port,
			"port below 1024 requires elevated privileges",
			"Consider using a port above 1024 for development")
	}

	if config.Host != "" {
		if err := validateHostname(config.Host); err != nil {
			result.addError("server.host", config.Host, err.Error(),
				"Use 'localhost' for local development",
				"Use '0.0.0.0' to bind to all interfaces")
		}
	}

	if _, err := security.ParseEnvironment(config.Environment); err != nil {
		result.addError("server.environment", config.Environment,
			"environment must be production, preview or development",
			"Set SUPAFOX_ENVIRONMENT or VERCEL_ENV")
	}

	if config.ShutdownTimeout < 0 {
		result.addError("server.shutdown_timeout", config.ShutdownTimeout,
			"shutdown timeout cannot be negative")
	} else if config.ShutdownTimeout > 0 && config.ShutdownTimeout < time.Second {
		result.addWarning("server.shutdown_timeout", config.ShutdownTimeout,
			"shutdown timeout below one second may cut off in-flight requests")
	}
}

func validateSiteConfigDetails(config *SiteConfig, result *ValidationResult) {
	if config.PublicURL == "" {
		return
	}

	raw := config.PublicURL
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		result.addError("site.public_url", config.PublicURL, "public URL must be a host or an absolute URL",
			"Example: https://supafox.dev")
		return
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		result.addError("site.public_url", config.PublicURL, "public URL must use http or https")
	}
}

func validateRoutesConfigDetails(config *Config, result *ValidationResult) {
	err := config.RouteTable().Validate()
	if err == nil {
		return
	}

	result.addError("routes", config.Routes, err.Error(),
		"Routes are absolute paths without a trailing slash",
		"A path cannot be both protected and auth-only")
}

var directiveName = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

func validateSecurityConfigDetails(config *SecurityConfig, result *ValidationResult) {
	if config.ReportURI != "" && !strings.HasPrefix(config.ReportURI, "/") {
		u, err := url.Parse(config.ReportURI)
		if err != nil || u.Scheme != "https" || u.Host == "" {
			result.addError("security.report_uri", config.ReportURI,
				"report URI must be a site path or an https URL")
		}
	}

	for name, sources := range config.ExtraSources {
		if !directiveName.MatchString(strings.ToLower(name)) {
			result.addError("security.extra_sources", name,
				fmt.Sprintf("invalid directive name %q", name))
			continue
		}
		for _, source := range sources {
			if strings.ContainsAny(source, ";,\n\r") || strings.TrimSpace(source) == "" {
				result.addError("security.extra_sources", source,
					fmt.Sprintf("invalid source for %s", name))
			}
			if source == "'unsafe-inline'" || source == "'unsafe-eval'" {
				result.addWarning("security.extra_sources", source,
					fmt.Sprintf("%s weakens %s", source, name),
					"Use the request nonce for inline scripts and styles")
			}
		}
	}

	for _, prefix := range config.AssetPrefixes {
		if !strings.HasPrefix(prefix, "/") {
			result.addError("security.asset_prefixes", prefix, "asset prefixes must start with '/'")
		}
		if prefix == "/" {
			result.addError("security.asset_prefixes", prefix, "'/' would exempt every page from the security headers")
		}
	}

	for _, proxy := range config.TrustedProxies {
		if _, err := security.ParseTrustedProxies([]string{proxy}); err != nil {
			result.addError("security.trusted_proxies", proxy, "trusted proxies must be IP addresses or CIDR prefixes")
		}
	}

	if rl := config.RateLimit; rl.Enabled {
		if rl.RequestsPerMinute <= 0 {
			result.addError("security.rate_limit.requests_per_minute", rl.RequestsPerMinute,
				"requests per minute must be positive when rate limiting is enabled")
		}
		if rl.Burst <= 0 {
			result.addError("security.rate_limit.burst", rl.Burst,
				"burst must be positive when rate limiting is enabled")
		}
	}
}

func validateContentConfigDetails(config *ContentConfig, result *ValidationResult) {
	if strings.TrimSpace(config.Dir) == "" {
		result.addError("content.dir", config.Dir, "content directory cannot be empty")
		return
	}
	if err := validatePath(config.Dir); err != nil {
		result.addError("content.dir", config.Dir, err.Error())
		return
	}
	if !pathExists(config.Dir) {
		result.addWarning("content.dir", config.Dir, "content directory does not exist",
			"No legal documents will be published")
	}
}

func validateLogConfigDetails(config *LogConfig, result *ValidationResult) {
	if _, err := logging.ParseLevel(config.Level); err != nil {
		result.addError("log.level", config.Level, "log level must be debug, info, warn or error")
	}
	if config.Format != "text" && config.Format != "json" {
		result.addError("log.format", config.Format, "log format must be text or json")
	}
}

// Helper validation functions

func validateHostname(host string) error {
	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}
	for _, char := range dangerousChars {
		if strings.Contains(host, char) {
			return fmt.Errorf("contains dangerous character: %s", char)
		}
	}

	if net.ParseIP(host) != nil || host == "localhost" {
		return nil
	}

	hostnameRegex := regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
	if !hostnameRegex.MatchString(host) {
		return fmt.Errorf("invalid hostname format")
	}
	return nil
}

// validatePath rejects traversal and shell metacharacters in directory settings.
func validatePath(path string) error {
	cleanPath := filepath.Clean(path)
	for _, part := range strings.Split(filepath.ToSlash(cleanPath), "/") {
		if part == ".." {
			return fmt.Errorf("path contains traversal: %s", path)
		}
	}

	dangerousChars := []string{"&", "|", ";", "$", "`", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(path, char) {
			return fmt.Errorf("path contains dangerous character %s: %s", char, path)
		}
	}
	return nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
