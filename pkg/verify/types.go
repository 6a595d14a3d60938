package verify

import (
	"context"
	"strconv"

	hghelper "github.com/holon-run/verify-linked-issue/pkg/github"
)

const (
	// SuccessMessage is the notice emitted when a linked issue is found
	SuccessMessage = "Referenced issue found in commit message or PR body."

	// DefaultErrorMessage fails the run when no linked issue is found.
	// It is also the comment body of last resort.
	DefaultErrorMessage = "No referenced issue found. Please create an issue and reference it in the commit message or PR body."

	// ErrorPrefix heads the failure message of an unexpected error
	ErrorPrefix = "Error verifying linked issue."
)

// IssueAPI is the slice of the GitHub API the verifier needs.
// *github.Client implements it.
type IssueAPI interface {
	FetchIssueInfo(ctx context.Context, owner, repo string, issueNumber int) (*hghelper.IssueInfo, error)
	ListIssueEvents(ctx context.Context, owner, repo string, issueNumber int) ([]hghelper.IssueEvent, error)
	CreateIssueComment(ctx context.Context, owner, repo string, issueNumber int, body string) (int64, error)
}

// Reporter surfaces the verdict to the automation platform
type Reporter interface {
	Notice(message string)
	SetFailed(message string)
}

// Outcome is the verdict of a run
type Outcome string

const (
	OutcomeSkipped  Outcome = "skipped"
	OutcomeLinked   Outcome = "linked"
	OutcomeUnlinked Outcome = "unlinked"
	OutcomeErrored  Outcome = "errored"
)

// Source is where a linkage was found
type Source string

const (
	SourceNone  Source = ""
	SourceBody  Source = "body"
	SourceEvent Source = "event"
)

// Result summarizes a run
type Result struct {
	Outcome Outcome
	Source  Source
	// Issue is the validated issue number for body linkage, 0 otherwise
	Issue int
	// CommentID is the ID of the posted comment, 0 when none was posted
	CommentID int64
	Err       error
}

// Failed reports whether the run should exit non-zero
func (r Result) Failed() bool {
	return r.Outcome == OutcomeUnlinked || r.Outcome == OutcomeErrored
}

// Outputs renders the result as step outputs
func (r Result) Outputs() map[string]string {
	out := map[string]string{
		"outcome": string(r.Outcome),
		"linked":  strconv.FormatBool(r.Outcome == OutcomeLinked),
		"source":  string(r.Source),
	}
	if r.Issue > 0 {
		out["issue"] = strconv.Itoa(r.Issue)
	}
	if r.CommentID > 0 {
		out["comment-id"] = strconv.FormatInt(r.CommentID, 10)
	}
	return out
}

// IssueLookup is the outcome of validating one candidate issue number.
// A failed lookup is an expected negative, not an error of the run.
type IssueLookup struct {
	Candidate string
	Number    int
	Issue     *hghelper.IssueInfo
	Err       error
}

// Valid reports whether the candidate names an existing, visible issue
func (l IssueLookup) Valid() bool {
	return l.Err == nil && l.Issue != nil
}
