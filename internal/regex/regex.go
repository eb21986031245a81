package regex

import "regexp"

var (
	// GitHub payload patterns
	PullRequestURL = regexp.MustCompile(`/pulls?/(\d+)$`)
	RepoSlug       = regexp.MustCompile(`^([^/\s]+)/([^/\s]+)$`)

	// Release patterns
	SemVer = regexp.MustCompile(`v?(\d+)\.(\d+)\.(\d+)`)
)
