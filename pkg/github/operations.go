package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v68/github"
)

// eventsPageSize is the page size for event listing. Only the first page is read.
const eventsPageSize = 100

// FetchIssueInfo fetches basic issue information using go-github SDK
func (c *Client) FetchIssueInfo(ctx context.Context, owner, repo string, issueNumber int) (*IssueInfo, error) {
	issue, _, err := c.GitHubClient().Issues.Get(ctx, owner, repo, issueNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issue: %w", err)
	}

	return convertFromGitHubIssue(issue), nil
}

// convertFromGitHubIssue converts a github.Issue to our IssueInfo type
func convertFromGitHubIssue(issue *github.Issue) *IssueInfo {
	author := ""
	if user := issue.GetUser(); user != nil {
		author = user.GetLogin()
	}

	info := &IssueInfo{
		Number:      issue.GetNumber(),
		Title:       issue.GetTitle(),
		State:       issue.GetState(),
		URL:         issue.GetHTMLURL(),
		Author:      author,
		CreatedAt:   issue.GetCreatedAt().Time,
		UpdatedAt:   issue.GetUpdatedAt().Time,
		PullRequest: issue.IsPullRequest(),
	}

	// Repository may be nil in some API responses
	if issue.GetRepository() != nil {
		info.Repository = issue.GetRepository().GetFullName()
	}

	info.Labels = make([]string, len(issue.Labels))
	for i, label := range issue.Labels {
		info.Labels[i] = label.GetName()
	}

	return info
}

// ListIssueEvents lists the events of an issue or pull request.
// A single page is requested; pagination is not followed.
func (c *Client) ListIssueEvents(ctx context.Context, owner, repo string, issueNumber int) ([]IssueEvent, error) {
	opts := &github.ListOptions{PerPage: eventsPageSize}

	events, _, err := c.GitHubClient().Issues.ListIssueEvents(ctx, owner, repo, issueNumber, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list issue events: %w", err)
	}

	result := make([]IssueEvent, 0, len(events))
	for _, event := range events {
		if event == nil {
			continue
		}
		result = append(result, convertFromGitHubIssueEvent(event))
	}
	return result, nil
}

// convertFromGitHubIssueEvent converts a github.IssueEvent to our IssueEvent type
func convertFromGitHubIssueEvent(event *github.IssueEvent) IssueEvent {
	actor := ""
	if user := event.GetActor(); user != nil {
		actor = user.GetLogin()
	}

	return IssueEvent{
		ID:        event.GetID(),
		Event:     event.GetEvent(),
		Actor:     actor,
		CreatedAt: event.GetCreatedAt().Time,
	}
}

// CreateIssueComment creates a new comment on an issue or PR
func (c *Client) CreateIssueComment(ctx context.Context, owner, repo string, issueNumber int, body string) (int64, error) {
	comment, _, err := c.GitHubClient().Issues.CreateComment(ctx, owner, repo, issueNumber, &github.IssueComment{Body: &body})
	if err != nil {
		return 0, fmt.Errorf("failed to create issue comment: %w", err)
	}
	return comment.GetID(), nil
}
