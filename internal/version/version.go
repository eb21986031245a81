package version

// Version is the current version of gemini-review-action.
// It must be bumped on every release.
const Version = "1.0.5"

// FullVersion returns the version with the v prefix used by release tags.
func FullVersion() string {
	return "v" + Version
}
