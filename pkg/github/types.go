package github

import "time"

// EventConnected is the timeline event GitHub emits when a pull request is
// linked to an issue (closing keyword or the Development sidebar).
const EventConnected = "connected"

// IssueInfo contains basic issue information
type IssueInfo struct {
	Number      int       `json:"number"`
	Title       string    `json:"title"`
	State       string    `json:"state"`
	URL         string    `json:"url"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Repository  string    `json:"repository"`
	Labels      []string  `json:"labels,omitempty"`
	PullRequest bool      `json:"pull_request"`
}

// IssueEvent is a single entry of an issue or pull request event list
type IssueEvent struct {
	ID        int64     `json:"id"`
	Event     string    `json:"event"`
	Actor     string    `json:"actor,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsConnected reports whether the event links the pull request to an issue
func (e IssueEvent) IsConnected() bool {
	return e.Event == EventConnected
}
