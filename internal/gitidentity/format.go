package gitidentity

import "strings"

const (
	identitySeparatorConstant        = "@"
	dirtySuffixConstant              = "-dirty"
	developmentMarkerConstant        = "-dev"
	versionIdentitySeparatorConstant = "-"
)

// FormatIdentity renders <branch>@<short-hash>[-dirty], or an empty string when the branch was not resolved.
func FormatIdentity(branchResolved bool, branch string, shortHash string, dirty bool) string {
	if !branchResolved {
		return ""
	}

	var identityBuilder strings.Builder
	identityBuilder.WriteString(branch)
	identityBuilder.WriteString(identitySeparatorConstant)
	identityBuilder.WriteString(shortHash)
	if dirty {
		identityBuilder.WriteString(dirtySuffixConstant)
	}
	return identityBuilder.String()
}

// FormatVersion appends -<identity> to templates carrying the -dev marker and returns other templates unchanged.
// An empty identity still receives the separator.
func FormatVersion(versionTemplate string, identity string) string {
	if !strings.Contains(versionTemplate, developmentMarkerConstant) {
		return versionTemplate
	}
	return versionTemplate + versionIdentitySeparatorConstant + identity
}
