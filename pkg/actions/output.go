package actions

import (
	"io"
	"sort"
	"strings"

	"github.com/sethvargo/go-githubactions"
)

// WriteOutputs appends step outputs to the GITHUB_OUTPUT file at path.
// It is a no-op when path is empty.
func WriteOutputs(path string, values map[string]string) {
	path = strings.TrimSpace(path)
	if path == "" || len(values) == 0 {
		return
	}

	action := githubactions.New(
		githubactions.WithWriter(io.Discard),
		githubactions.WithGetenv(func(key string) string {
			if key == "GITHUB_OUTPUT" {
				return path
			}
			return ""
		}),
	)

	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		action.SetOutput(key, values[key])
	}
}
