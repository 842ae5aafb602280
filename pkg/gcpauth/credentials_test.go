package gcpauth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdeev/courtside-media/pkg/types/errs"
)

func TestResolve_InlineJSON_TempFileLifecycle(t *testing.T) {
	creds, err := Resolve(`{"type":"service_account","project_id":"x"}`)
	require.NoError(t, err)
	require.True(t, creds.ephemeral)

	// The loader artifact exists until Cleanup and holds the parsed object.
	b, err := os.ReadFile(creds.path)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"service_account","project_id":"x"}`, string(b))

	creds.Cleanup()
	_, err = os.Stat(creds.path)
	require.True(t, os.IsNotExist(err))

	// Second Cleanup is a no-op.
	creds.Cleanup()
}

func TestResolve_InlineJSON_LeadingWhitespace(t *testing.T) {
	creds, err := Resolve("  \n\t{\"type\":\"service_account\"}")
	require.NoError(t, err)
	defer creds.Cleanup()

	require.True(t, creds.ephemeral)
}

func TestResolve_InlineJSON_Invalid(t *testing.T) {
	_, err := Resolve(`{"type":"service_account"`)
	require.ErrorIs(t, err, errs.ErrConfig)
}

func TestResolve_Path(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sa.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600))

	creds, err := Resolve(path)
	require.NoError(t, err)
	require.False(t, creds.ephemeral)
	require.Equal(t, path, creds.path)

	// Cleanup never removes a caller-owned file.
	creds.Cleanup()
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestResolve_PathMissing(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, errs.ErrConfig)
}

func TestResolve_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n"} {
		_, err := Resolve(raw)
		require.ErrorIs(t, err, errs.ErrConfig)
	}
}

func TestResolve_Concurrent(t *testing.T) {
	done := make(chan string, 8)

	for i := 0; i < 8; i++ {
		go func() {
			creds, err := Resolve(`{"type":"service_account","project_id":"x"}`)
			if err != nil {
				done <- ""
				return
			}
			defer creds.Cleanup()
			done <- creds.path
		}()
	}

	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		p := <-done
		require.NotEmpty(t, p)
		require.False(t, seen[p], "temp files must be independent per resolution")
		seen[p] = true
	}
}
