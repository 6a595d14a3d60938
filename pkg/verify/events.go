package verify

import (
	"context"

	"github.com/holon-run/verify-linked-issue/pkg/actions"
)

// CheckEvents reports whether the pull request's event list contains a
// "connected" event. It stops at the first match. Listing errors are
// returned to the caller.
func (v *Verifier) CheckEvents(ctx context.Context, ac *actions.Context) (bool, error) {
	events, err := v.api.ListIssueEvents(ctx, ac.Owner, ac.Repo, ac.PullRequestNumber())
	if err != nil {
		return false, err
	}

	for _, event := range events {
		if event.IsConnected() {
			v.logger.Debug("Found connected event.", "event_id", event.ID)
			return true, nil
		}
	}
	return false, nil
}
