package verify

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/holon-run/verify-linked-issue/pkg/actions"
)

// issuePattern matches "<fullName>/issues/<n>" with fullName taken literally
func issuePattern(fullName string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(fullName+"/issues/") + `(\d+)`)
}

// ExtractCandidates returns the issue numbers referenced in body as
// "<fullName>/issues/<n>", in the order they appear.
func ExtractCandidates(fullName, body string) []string {
	if body == "" || fullName == "" {
		return nil
	}

	matches := issuePattern(fullName).FindAllStringSubmatch(body, -1)
	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, m[1])
	}
	return candidates
}

// CheckBody scans the pull request body for a reference to an existing issue.
// Candidates are validated one at a time; the first valid one wins. An empty
// body returns false without calling the API.
func (v *Verifier) CheckBody(ctx context.Context, ac *actions.Context) (IssueLookup, bool) {
	body := ac.PullRequestBody()
	if body == "" {
		return IssueLookup{}, false
	}
	v.logger.Debug("Checking PR body", "body", body)

	candidates := ExtractCandidates(ac.FullName, body)
	v.logger.Debug("issue reference candidates", "pattern", issuePattern(ac.FullName).String(), "candidates", candidates)

	for _, candidate := range candidates {
		lookup := v.lookupIssue(ctx, ac, candidate)
		if lookup.Valid() {
			v.logger.Debug("Found issue in PR body", "issue", lookup.Number)
			return lookup, true
		}
		v.logger.Debug("candidate is not a valid issue", "candidate", candidate, "error", lookup.Err)
	}
	return IssueLookup{}, false
}

// lookupIssue validates one candidate. Failures are carried in the result.
func (v *Verifier) lookupIssue(ctx context.Context, ac *actions.Context, candidate string) IssueLookup {
	cleaned := strings.TrimSpace(strings.ReplaceAll(candidate, "#", ""))
	lookup := IssueLookup{Candidate: candidate}

	number, err := strconv.Atoi(cleaned)
	if err != nil || number <= 0 {
		lookup.Err = fmt.Errorf("invalid issue number %q", candidate)
		return lookup
	}
	lookup.Number = number

	issue, err := v.api.FetchIssueInfo(ctx, ac.Owner, ac.Repo, number)
	if err != nil {
		lookup.Err = err
		return lookup
	}
	if issue == nil {
		lookup.Err = fmt.Errorf("issue #%d not returned", number)
		return lookup
	}
	lookup.Issue = issue
	return lookup
}
