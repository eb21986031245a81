package services

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/thomas-vilte/gemini-review-action/internal/cache"
	domainErrors "github.com/thomas-vilte/gemini-review-action/internal/errors"
	"github.com/thomas-vilte/gemini-review-action/internal/logger"
	"github.com/thomas-vilte/gemini-review-action/internal/ports"
	"golang.org/x/mod/semver"
)

const (
	releaseOwner = "thomas-vilte"
	releaseRepo  = "gemini-review-action"

	// updateCacheTTL keeps repeated CI runs from hitting the releases API
	// on every job.
	updateCacheTTL = 24 * time.Hour

	disableUpdateCheckEnv = "GEMINI_REVIEW_DISABLE_UPDATE_CHECK"
)

type cachedRelease struct {
	LatestKnown string `json:"latest_known"`
}

// UpdateInfo reports the outcome of an update check.
type UpdateInfo struct {
	CurrentVersion string
	LatestVersion  string
	Available      bool
}

// VersionChecker compares the running version against the latest published
// release, caching the lookup for a day.
type VersionChecker struct {
	currentVersion string
	vcs            ports.VCSClient
	cache          *cache.Cache
}

func NewVersionChecker(currentVersion string, vcs ports.VCSClient, c *cache.Cache) *VersionChecker {
	return &VersionChecker{
		currentVersion: currentVersion,
		vcs:            vcs,
		cache:          c,
	}
}

// UpdateCacheTTL is the TTL callers should build the cache with.
func UpdateCacheTTL() time.Duration {
	return updateCacheTTL
}

// CheckForUpdates returns the latest release and whether it is newer than
// the running version. It returns nil info when the check is disabled via
// GEMINI_REVIEW_DISABLE_UPDATE_CHECK.
func (v *VersionChecker) CheckForUpdates(ctx context.Context) (*UpdateInfo, error) {
	if os.Getenv(disableUpdateCheckEnv) != "" {
		return nil, nil
	}

	latest, err := v.latestVersion(ctx)
	if err != nil {
		return nil, domainErrors.ErrUpdateCheckFailed.WithError(err)
	}

	return &UpdateInfo{
		CurrentVersion: v.currentVersion,
		LatestVersion:  latest,
		Available:      isNewer(latest, v.currentVersion),
	}, nil
}

func (v *VersionChecker) latestVersion(ctx context.Context) (string, error) {
	hash := ""
	if v.cache != nil {
		hash = v.cache.GenerateHash("latest-release:" + releaseOwner + "/" + releaseRepo)
		if raw, hit, err := v.cache.Get(hash); err == nil && hit {
			var cached cachedRelease
			if err := json.Unmarshal(raw, &cached); err == nil && cached.LatestKnown != "" {
				return cached.LatestKnown, nil
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	latest, err := v.vcs.GetLatestRelease(ctx, releaseOwner, releaseRepo)
	if err != nil {
		return "", err
	}

	if v.cache != nil {
		if err := v.cache.Set(hash, cachedRelease{LatestKnown: latest}); err != nil {
			logger.Debug(ctx, "failed to cache latest release", "error", err)
		}
	}

	return latest, nil
}

// isNewer compares two release tags as semver, tolerating a missing "v"
// prefix.
func isNewer(latest, current string) bool {
	latest = normalizeVersion(latest)
	current = normalizeVersion(current)
	if !semver.IsValid(latest) || !semver.IsValid(current) {
		return false
	}
	return semver.Compare(latest, current) > 0
}

func normalizeVersion(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "v") {
		return s
	}
	return "v" + s
}
