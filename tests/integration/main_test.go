package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	repoRoot string
	binPath  string
)

func TestMain(m *testing.M) {
	var err error
	repoRoot, err = findRepoRoot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	binDir, err := os.MkdirTemp("", "verify-linked-issue-bin-*")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	binPath = filepath.Join(binDir, "verify-linked-issue")
	if runtime.GOOS == "windows" {
		binPath += ".exe"
	}

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/verify-linked-issue")
	cmd.Dir = repoRoot
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	if out, err := cmd.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build verify-linked-issue: %v\n%s\n", err, string(out))
		_ = os.RemoveAll(binDir)
		os.Exit(2)
	}

	exitCode := m.Run()
	_ = os.RemoveAll(binDir)
	os.Exit(exitCode)
}

func TestIntegration(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: filepath.Join(repoRoot, "tests", "integration", "testdata"),
		Setup: func(env *testscript.Env) error {
			home := filepath.Join(env.WorkDir, "home")
			if err := os.MkdirAll(home, 0o755); err != nil {
				return err
			}

			server := newFakeGitHub(filepath.Join(env.WorkDir, "comments.log"))
			env.Defer(server.Close)

			env.Setenv("HOME", home)
			env.Setenv("NO_COLOR", "1")
			env.Setenv("GITHUB_TOKEN", "test-token")
			env.Setenv("GITHUB_REPOSITORY", "myorg/myrepo")
			env.Setenv("GITHUB_API_URL", server.URL)

			pathVar := os.Getenv("PATH")
			env.Setenv("PATH", filepath.Dir(binPath)+string(os.PathListSeparator)+pathVar)
			return nil
		},
	})
}

// newFakeGitHub serves the issue, event, and comment endpoints for myorg/myrepo.
// Issue 42 exists; pull request 8 has a connected event. Posted comment
// bodies are appended to commentLog.
func newFakeGitHub(commentLog string) *httptest.Server {
	var mu sync.Mutex

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		path := strings.TrimPrefix(r.URL.Path, "/repos/myorg/myrepo/issues/")

		switch {
		case r.Method == http.MethodGet && path == "42":
			_, _ = io.WriteString(w, `{"number":42,"title":"Tracked work","state":"open"}`)
		case r.Method == http.MethodGet && path == "8/events":
			_, _ = io.WriteString(w, `[{"id":1,"event":"labeled"},{"id":2,"event":"connected"}]`)
		case r.Method == http.MethodGet && strings.HasSuffix(path, "/events"):
			_, _ = io.WriteString(w, `[]`)
		case r.Method == http.MethodPost && strings.HasSuffix(path, "/comments"):
			var payload struct {
				Body string `json:"body"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			mu.Lock()
			f, err := os.OpenFile(commentLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err == nil {
				_, _ = io.WriteString(f, payload.Body)
				_ = f.Close()
			}
			mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":777}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"Not Found"}`)
		}
	}))
}

func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("unable to locate repo root (go.mod not found)")
}
