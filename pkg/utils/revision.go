// Package utils provides helpers for describing manifest revisions.
package utils

import (
	"strings"

	"golang.org/x/mod/semver"
)

// RevisionKind classifies a revision string.
type RevisionKind string

const (
	// KindNone is an absent or empty revision.
	KindNone RevisionKind = "none"

	// KindSemver is a semantic version tag such as v3.5.0 or 3.5.0.
	KindSemver RevisionKind = "semver"

	// KindCommit is an abbreviated or full hexadecimal commit hash.
	KindCommit RevisionKind = "commit"

	// KindRef is any other branch or tag name.
	KindRef RevisionKind = "ref"
)

// Change describes how a revision moved.
type Change string

const (
	// ChangeSet means there was no previous revision.
	ChangeSet Change = "set"

	// ChangeUpgrade means both revisions are semantic versions and the new one is higher.
	ChangeUpgrade Change = "upgrade"

	// ChangeDowngrade means both revisions are semantic versions and the new one is lower.
	ChangeDowngrade Change = "downgrade"

	// ChangeReplace covers every other transition.
	ChangeReplace Change = "replace"
)

// Commit hashes are between an abbreviated 7 characters and a full SHA-256.
const (
	minCommitLen = 7
	maxCommitLen = 64
)

// CanonicalSemver returns rev in the "v"-prefixed form expected by
// golang.org/x/mod/semver, or "" when rev is not a semantic version.
//
// Parameters:
//   - rev: A revision such as "v1.2.3" or "1.2.3"
//
// Returns:
//   - string: The canonical semver string, or "" if invalid
func CanonicalSemver(rev string) string {
	v := strings.TrimSpace(rev)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}

// ClassifyRevision reports what kind of revision rev is.
//
// A string that is both valid hex and a valid version (e.g. "1234567") is
// treated as a commit, since west pins are far more often hashes than bare
// numeric tags.
func ClassifyRevision(rev string) RevisionKind {
	rev = strings.TrimSpace(rev)
	switch {
	case rev == "":
		return KindNone
	case isCommitHash(rev):
		return KindCommit
	case CanonicalSemver(rev) != "":
		return KindSemver
	default:
		return KindRef
	}
}

// DescribeChange classifies the transition from oldRev to newRev.
//
// Parameters:
//   - oldRev: The previous revision, "" when there was none
//   - newRev: The new revision
//
// Returns:
//   - Change: ChangeSet, ChangeUpgrade, ChangeDowngrade or ChangeReplace
func DescribeChange(oldRev, newRev string) Change {
	if strings.TrimSpace(oldRev) == "" {
		return ChangeSet
	}
	if ClassifyRevision(oldRev) != KindSemver || ClassifyRevision(newRev) != KindSemver {
		return ChangeReplace
	}

	switch semver.Compare(CanonicalSemver(oldRev), CanonicalSemver(newRev)) {
	case -1:
		return ChangeUpgrade
	case 1:
		return ChangeDowngrade
	default:
		return ChangeReplace
	}
}

func isCommitHash(rev string) bool {
	if len(rev) < minCommitLen || len(rev) > maxCommitLen {
		return false
	}
	for _, c := range rev {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
