package sshwatch

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"

	"codetally/internal/domain"
)

func newPublicKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func TestEncodeLine(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	event := domain.ProgressEvent{
		Message:   "Found 3 contributors",
		Severity:  domain.SeverityInfo,
		Timestamp: ts,
	}

	line, err := encodeLine(event)

	require.NoError(t, err)
	assert.Equal(t, ts.Local().Format("15:04:05")+" [info] Found 3 contributors\n", string(line))
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newPublicKey(t)
	other := newPublicKey(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "authorized_keys")
	content := strings.Join([]string{
		"# team keys",
		"",
		"not a key",
		strings.TrimSpace(string(gossh.MarshalAuthorizedKey(allowed))) + " alice@laptop",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	tests := []struct {
		name string
		key  gossh.PublicKey
		path string
		want bool
	}{
		{name: "listed key", key: allowed, path: path, want: true},
		{name: "unlisted key", key: other, path: path, want: false},
		{name: "missing file", key: allowed, path: filepath.Join(dir, "missing"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isKeyAuthorized(tt.key, tt.path))
		})
	}
}

func TestGetKeyFingerprint(t *testing.T) {
	fingerprint := getKeyFingerprint(newPublicKey(t))

	assert.True(t, strings.HasPrefix(fingerprint, "MD5:"))
	assert.Len(t, strings.Split(strings.TrimPrefix(fingerprint, "MD5:"), ":"), 16)
}
