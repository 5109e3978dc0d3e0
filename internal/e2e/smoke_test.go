package e2e

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeConfigFixture(home))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"alice":{"mood":"happy","studyLogs":[{"subject":"math"}]},"bucketList":[]}`))
	}))
	defer server.Close()

	_, stderr, err := runTogether(t, binaryPath, home, server.URL,
		"profile", "set",
		"--name", "bob",
		"--partner", "alice",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runTogether(t, binaryPath, home, server.URL, "once", "--no-spinner")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Together Update: alice is feeling happy")
	assert.Contains(t, stdout, "Together Update: alice finished studying math 📚")

	stdout, stderr, err = runTogether(t, binaryPath, home, server.URL, "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "partner: alice (you: bob)")
	assert.Contains(t, stdout, "bucket list: 0 items")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "together-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/together")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build together binary: %s", string(output))
	return binaryPath
}

func runTogether(t *testing.T, binaryPath, home, stateURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "TOGETHER_STATE_URL="+stateURL)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeConfigFixture(home string) error {
	configDir := filepath.Join(home, ".together")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	config := `[notify]
backend = "console"

[log]
level = "error"
`

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644)
}
