// Package verify checks that a pull request references a tracked issue.
//
// The procedure is strictly sequential: trigger guard, body scan, event
// scan (only when the body scan found nothing), verdict, and an optional
// comment when the verdict is negative. Every failure that is not an
// expected negative result ends up in Run's single error boundary.
package verify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/holon-run/verify-linked-issue/pkg/actions"
	"github.com/holon-run/verify-linked-issue/pkg/config"
	hghelper "github.com/holon-run/verify-linked-issue/pkg/github"
	"github.com/holon-run/verify-linked-issue/pkg/logging"
)

// Options configures a Verifier
type Options struct {
	// CommentInput is the raw `comment` input, decoded by config.ParseComment
	CommentInput string
	// TemplatePath overrides config.DefaultTemplatePath
	TemplatePath string
	Logger       *slog.Logger
}

// Verifier runs the linked-issue check against one automation context
type Verifier struct {
	api          IssueAPI
	reporter     Reporter
	logger       *slog.Logger
	commentInput string
	templatePath string
}

// New creates a Verifier. api and reporter must not be nil.
func New(api IssueAPI, reporter Reporter, opts Options) *Verifier {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Verifier{
		api:          api,
		reporter:     reporter,
		logger:       logger,
		commentInput: opts.CommentInput,
		templatePath: opts.TemplatePath,
	}
}

// Run executes the whole procedure and reports the verdict.
// Unexpected errors are logged and reported as a failure of the run;
// they are also returned inside the Result.
func (v *Verifier) Run(ctx context.Context, ac *actions.Context) Result {
	if !ac.IsPullRequest() {
		v.logger.Info("Not a pull request skipping verification!", "event", ac.EventName)
		return Result{Outcome: OutcomeSkipped}
	}

	v.logger.Debug("Starting Linked Issue Verification!",
		"repository", ac.FullName,
		"pull_request", ac.PullRequestNumber(),
	)

	result, err := v.verify(ctx, ac)
	if err != nil {
		v.fail(err)
		return Result{Outcome: OutcomeErrored, Err: err}
	}
	return result
}

func (v *Verifier) verify(ctx context.Context, ac *actions.Context) (Result, error) {
	v.logger.Info("pull request labels", "labels", strings.Join(ac.Labels(), ","))

	if lookup, ok := v.CheckBody(ctx, ac); ok {
		v.reporter.Notice(SuccessMessage)
		return Result{Outcome: OutcomeLinked, Source: SourceBody, Issue: lookup.Number}, nil
	}

	connected, err := v.CheckEvents(ctx, ac)
	if err != nil {
		return Result{}, err
	}
	if connected {
		v.reporter.Notice(SuccessMessage)
		return Result{Outcome: OutcomeLinked, Source: SourceEvent}, nil
	}

	// Parsed only here: a found link passes whatever the comment input says.
	comment, err := config.ParseComment(v.commentInput)
	if err != nil {
		return Result{}, err
	}

	result := Result{Outcome: OutcomeUnlinked}
	if comment.Enabled {
		result.CommentID = v.postComment(ctx, ac, comment)
	}
	v.reporter.SetFailed(DefaultErrorMessage)
	return result, nil
}

// fail is the single error boundary of a run
func (v *Verifier) fail(err error) {
	ReportError(v.reporter, v.logger, err)
}

// ReportError logs err with any nested GitHub API error details and fails
// the run with ErrorPrefix followed by the error message.
func ReportError(reporter Reporter, logger *slog.Logger, err error) {
	logger.Error(ErrorPrefix, "error", err)
	for _, detail := range hghelper.ErrorDetails(err) {
		logger.Error("GitHub API error detail", "detail", detail.String())
	}
	reporter.SetFailed(fmt.Sprintf("%s\n\n%s", ErrorPrefix, err.Error()))
}
