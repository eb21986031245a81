package github

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/google/go-github/v80/github"
	domainErrors "github.com/thomas-vilte/gemini-review-action/internal/errors"
	"github.com/thomas-vilte/gemini-review-action/internal/models"
	"github.com/thomas-vilte/gemini-review-action/internal/regex"
)

// ParseIssueCommentEvent reads an issue_comment payload from eventPath and
// extracts the pull request association. A comment on a plain issue is not
// an error: the result carries IsPullRequest=false and the caller exits
// cleanly. A missing or malformed payload is an error.
func ParseIssueCommentEvent(eventPath string) (*models.CommentEvent, error) {
	data, err := os.ReadFile(eventPath)
	if err != nil {
		return nil, domainErrors.ErrEventPayloadMissing.WithError(err).WithContext("event_path", eventPath)
	}

	var event github.IssueCommentEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, domainErrors.ErrEventPayloadInvalid.WithError(err).WithContext("event_path", eventPath)
	}

	issue := event.GetIssue()
	if issue == nil {
		return nil, domainErrors.ErrEventPayloadInvalid.WithContext("reason", "payload has no issue")
	}

	result := &models.CommentEvent{
		CommentBody: event.GetComment().GetBody(),
	}

	links := issue.GetPullRequestLinks()
	if links == nil {
		return result, nil
	}

	// The PR number is the numeric suffix of issue.pull_request.url, e.g.
	// ".../repos/octocat/hello-world/pulls/42".
	m := regex.PullRequestURL.FindStringSubmatch(links.GetURL())
	if m == nil {
		return nil, domainErrors.ErrEventPayloadInvalid.
			WithContext("reason", "pull_request url has no numeric suffix").
			WithContext("url", links.GetURL())
	}

	number, err := strconv.Atoi(m[1])
	if err != nil || number <= 0 {
		return nil, domainErrors.ErrEventPayloadInvalid.
			WithContext("reason", "pull request number is not a positive integer").
			WithContext("url", links.GetURL())
	}

	// For issue_comment events the issue number and the PR number are the
	// same thing; a mismatch means the payload is not what it claims.
	if issueNumber := issue.GetNumber(); issueNumber != 0 && issueNumber != number {
		return nil, domainErrors.ErrEventPayloadInvalid.
			WithContext("reason", "issue number does not match pull request url").
			WithContext("issue_number", issueNumber).
			WithContext("pr_number", number)
	}

	result.IsPullRequest = true
	result.PRNumber = number
	return result, nil
}
