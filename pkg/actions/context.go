package actions

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v68/github"
)

// Context is a read-only snapshot of the event that triggered the run
type Context struct {
	EventName string
	Owner     string
	Repo      string
	// FullName is the payload's repository.full_name, used for body matching
	FullName string

	pullRequest *github.PullRequest
	labels      []string
}

// LoadContext reads the event payload referenced by GITHUB_EVENT_PATH.
//
// Any payload carrying a pull_request object is treated as a pull request
// event, whatever its event name.
func LoadContext(e *Env) (*Context, error) {
	if e.EventPath == "" {
		return nil, fmt.Errorf("GITHUB_EVENT_PATH is not set")
	}

	data, err := os.ReadFile(e.EventPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read event payload: %w", err)
	}

	return ParseContext(e.EventName, e.Repository, data)
}

// ParseContext builds a Context from a raw event payload.
// repository is the GITHUB_REPOSITORY value ("owner/repo") and may be empty.
func ParseContext(eventName, repository string, payload []byte) (*Context, error) {
	var event github.PullRequestEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse event payload: %w", err)
	}

	ctx := &Context{
		EventName:   eventName,
		pullRequest: event.GetPullRequest(),
	}

	if owner, repo, ok := strings.Cut(repository, "/"); ok {
		ctx.Owner, ctx.Repo = owner, repo
	}
	if repo := event.GetRepo(); repo != nil {
		ctx.FullName = repo.GetFullName()
		if ctx.Owner == "" || ctx.Repo == "" {
			ctx.Owner = repo.GetOwner().GetLogin()
			ctx.Repo = repo.GetName()
		}
	}
	if ctx.FullName == "" && ctx.Owner != "" && ctx.Repo != "" {
		ctx.FullName = ctx.Owner + "/" + ctx.Repo
	}

	if ctx.pullRequest != nil {
		for _, label := range ctx.pullRequest.Labels {
			ctx.labels = append(ctx.labels, label.GetName())
		}
		if ctx.Owner == "" || ctx.Repo == "" {
			return nil, fmt.Errorf("pull request event has no repository")
		}
	}

	return ctx, nil
}

// IsPullRequest reports whether the run was triggered by a pull request
func (c *Context) IsPullRequest() bool {
	return c.pullRequest != nil
}

// PullRequestNumber returns the pull request number, or 0 outside PR events
func (c *Context) PullRequestNumber() int {
	return c.pullRequest.GetNumber()
}

// PullRequestBody returns the pull request body. A null body is returned as "".
func (c *Context) PullRequestBody() string {
	return c.pullRequest.GetBody()
}

// Labels returns the label names attached to the pull request
func (c *Context) Labels() []string {
	return c.labels
}
