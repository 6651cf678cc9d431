package security

import (
	"bytes"
	"context"
	"encoding/base64"
	stderrors "errors"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supafox/supafox/internal/errors"
	"github.com/supafox/supafox/internal/logging"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, stderrors.New("entropy exhausted") }

func TestGenerateNonce(t *testing.T) {
	nonce, err := GenerateNonce()
	require.NoError(t, err)

	assert.Len(t, nonce, 24)
	assert.True(t, ValidNonce(nonce))

	raw, err := base64.StdEncoding.DecodeString(nonce)
	require.NoError(t, err)
	assert.Len(t, raw, 16)
}

func TestGenerateNonceIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		nonce, err := GenerateNonce()
		require.NoError(t, err)
		require.False(t, seen[nonce], "duplicate nonce %s", nonce)
		seen[nonce] = true
	}
}

func TestGenerateNonceRandomFailure(t *testing.T) {
	orig := randReader
	randReader = failingReader{}
	defer func() { randReader = orig }()

	nonce, err := GenerateNonce()
	assert.Empty(t, nonce)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), "entropy exhausted")
}

func TestValidNonce(t *testing.T) {
	tests := []struct {
		nonce string
		valid bool
	}{
		{"q83v2Lm9Q3eJ1lYc+/AbCw==", true},
		{"abc", true},
		{"abc=", true},
		{"abc===", false},
		{"", false},
		{"abc-_", false},
		{"'nonce'", false},
		{"abc\" onload=\"x", false},
	}
	for _, tt := range tests {
		t.Run(tt.nonce, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidNonce(tt.nonce))
		})
	}
}

func TestNonceFromRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelDebug, Format: "json", Output: &buf})

	r := httptest.NewRequest("GET", "/", nil)
	assert.Empty(t, NonceFromRequest(r, logger))
	assert.Zero(t, buf.Len())

	r.Header.Set(NonceHeader, "q83v2Lm9Q3eJ1lYc+/AbCw==")
	assert.Equal(t, "q83v2Lm9Q3eJ1lYc+/AbCw==", NonceFromRequest(r, logger))
	assert.Zero(t, buf.Len())

	r.Header.Set(NonceHeader, "<script>")
	assert.Empty(t, NonceFromRequest(r, logger))
	assert.Contains(t, buf.String(), "Ignoring malformed nonce")
}

func TestNonceContext(t *testing.T) {
	ctx := WithNonce(context.Background(), "abc=")
	assert.Equal(t, "abc=", NonceFromContext(ctx))
	assert.Equal(t, "abc=", templ.GetNonce(ctx))
	assert.Empty(t, NonceFromContext(context.Background()))
}
