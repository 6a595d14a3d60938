package actions

import (
	"io"
	"os"

	"github.com/sethvargo/go-githubactions"
)

// Commands writes GitHub Actions workflow commands.
// The runner turns them into annotations and the step's failure state.
type Commands struct {
	action *githubactions.Action
	failed bool
}

// NewCommands returns a Commands writing to w (stdout when nil)
func NewCommands(w io.Writer) *Commands {
	if w == nil {
		w = os.Stdout
	}
	return &Commands{action: githubactions.New(githubactions.WithWriter(w))}
}

// Notice creates a notice annotation
func (c *Commands) Notice(message string) {
	c.action.Noticef("%s", message)
}

// Error creates an error annotation without failing the step
func (c *Commands) Error(message string) {
	c.action.Errorf("%s", message)
}

// SetFailed creates an error annotation and marks the step as failed.
// Unlike githubactions.Fatalf it does not exit; the caller exits non-zero
// when Failed reports true.
func (c *Commands) SetFailed(message string) {
	c.failed = true
	c.Error(message)
}

// Failed reports whether SetFailed was called
func (c *Commands) Failed() bool {
	return c.failed
}
