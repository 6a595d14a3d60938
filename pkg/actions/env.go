// Package actions reads the GitHub Actions runtime: the runner environment,
// the triggering event payload, action inputs, and workflow commands.
package actions

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the subset of the runner environment the verifier consumes.
type Env struct {
	Token      string `env:"GITHUB_TOKEN"`
	EventName  string `env:"GITHUB_EVENT_NAME"`
	EventPath  string `env:"GITHUB_EVENT_PATH"`
	Repository string `env:"GITHUB_REPOSITORY"`
	APIURL     string `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	OutputPath string `env:"GITHUB_OUTPUT"`
	Debug      bool   `env:"RUNNER_DEBUG"`

	// Action inputs, exported by the runner as INPUT_<NAME>
	CommentInput  string `env:"INPUT_COMMENT"`
	FilenameInput string `env:"INPUT_FILENAME"`
}

// LoadEnv parses the runner environment from the current process
func LoadEnv() (*Env, error) {
	cfg, err := env.ParseAs[Env]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse runner environment: %w", err)
	}
	return &cfg, nil
}

// LoadEnvFrom parses the runner environment from an explicit variable map
func LoadEnvFrom(vars map[string]string) (*Env, error) {
	cfg, err := env.ParseAsWithOptions[Env](env.Options{Environment: vars})
	if err != nil {
		return nil, fmt.Errorf("failed to parse runner environment: %w", err)
	}
	return &cfg, nil
}
