package cmd

import (
	"testing"

	"github.com/fatih/color"

	"github.com/Jinsoo1210/carrot/internal/api"
	"github.com/Jinsoo1210/carrot/internal/api/apitest"
	"github.com/Jinsoo1210/carrot/internal/config"
	"github.com/Jinsoo1210/carrot/internal/session"
	"github.com/Jinsoo1210/carrot/internal/tokenstore"
)

func init() {
	color.NoColor = true
}

// setupTestEnv points the package globals at a temp data dir and a fake
// backend, returning the backend and a session wired to both.
func setupTestEnv(t *testing.T) (*apitest.Server, *session.Session) {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	s, err := tokenstore.NewDiskv(dir)
	if err != nil {
		t.Fatalf("creating token store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	tokens = s
	appConfig = &config.Config{
		DataDir:    dir,
		APIURL:     srv.URL,
		TokenStore: tokenstore.BackendDiskv,
		Locale:     "en",
		Todo:       config.TodoConfig{MaxTitle: 14},
	}
	jsonOutput = false
	return srv, session.New(api.New(srv.URL, "test-device"), tokens)
}

func yes(string) (bool, error) { return true, nil }
func no(string) (bool, error)  { return false, nil }
