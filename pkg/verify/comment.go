package verify

import (
	"context"

	"github.com/holon-run/verify-linked-issue/pkg/actions"
	"github.com/holon-run/verify-linked-issue/pkg/config"
	hghelper "github.com/holon-run/verify-linked-issue/pkg/github"
)

// postComment asks the author to link an issue. It returns the new
// comment's ID, or 0 when posting failed; a failure never changes the verdict.
func (v *Verifier) postComment(ctx context.Context, ac *actions.Context, cfg *config.CommentConfig) int64 {
	body, source := config.ResolveMessage(cfg, v.templatePath, DefaultErrorMessage)
	v.logger.Debug("Adding comment to PR", "source", string(source), "body", body)

	id, err := v.api.CreateIssueComment(ctx, ac.Owner, ac.Repo, ac.PullRequestNumber(), body)
	if err != nil {
		v.logger.Error("failed to post missing issue comment", "error", err)
		for _, detail := range hghelper.ErrorDetails(err) {
			v.logger.Error("GitHub API error detail", "detail", detail.String())
		}
		return 0
	}

	v.logger.Info("posted missing issue comment", "comment_id", id)
	return id
}
