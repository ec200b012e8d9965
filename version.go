package tagline

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotSemver is returned by ParseRelease for strings that are not
// SemVer 2.0.0.
var ErrNotSemver = errors.New("not a semver version")

var releaseRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// Release is a parsed library version.
type Release struct {
	Major, Minor, Patch int
	// Pre and Build hold the text after "-" and "+", without the separator.
	Pre, Build string
}

// ParseRelease parses a SemVer 2.0.0 string. A leading "v" is rejected; tags
// are derived, never parsed.
func ParseRelease(v string) (Release, error) {
	m := releaseRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return Release{}, fmt.Errorf("parse %q: %w", v, ErrNotSemver)
	}
	var r Release
	for i, dst := range []*int{&r.Major, &r.Minor, &r.Patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Release{}, fmt.Errorf("parse %q: %w", v, err)
		}
		*dst = n
	}
	r.Pre, r.Build = m[4], m[5]
	return r, nil
}

func (r Release) String() string {
	s := fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
	if r.Pre != "" {
		s += "-" + r.Pre
	}
	if r.Build != "" {
		s += "+" + r.Build
	}
	return s
}

// Tag is the git tag form of r.
func (r Release) Tag() string { return "v" + r.String() }

// Current returns the embedded release. ok is false when the VERSION file is
// not valid SemVer.
func Current() (r Release, ok bool) {
	r, err := ParseRelease(embeddedVersion)
	return r, err == nil
}

// Version returns the embedded version string as written in VERSION.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version with a leading "v".
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	_, err := ParseRelease(v)
	return err == nil
}

// Banner names the widget and its release, for host status lines.
func Banner() string {
	return "tagline " + VersionTag()
}
