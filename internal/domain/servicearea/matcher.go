// Package servicearea decides whether a business serves a target ZIP code.
package servicearea

import "slices"

// MissingDataPolicy names the outcome when a ZIP filter is active but the
// business has no service-area data at all: no nationwide flag, no ZIP
// set, and no registration ZIP. The legacy pages silently disagreed on
// this default, so it is an explicit, configurable choice here.
type MissingDataPolicy string

const (
	// PolicyExclude drops businesses without service-area data from
	// ZIP-filtered results. This is the stricter default.
	PolicyExclude MissingDataPolicy = "exclude"

	// PolicyInclude keeps businesses without service-area data in
	// ZIP-filtered results.
	PolicyInclude MissingDataPolicy = "include"
)

// Valid reports whether the policy is one of the named values.
func (p MissingDataPolicy) Valid() bool {
	return p == PolicyExclude || p == PolicyInclude
}

// Facts is everything the matcher needs to know about one business:
// its stored service-area record plus the registration ZIP fallback.
type Facts struct {
	Nationwide bool
	ZipCodes   []string
	PrimaryZip string
}

// Matcher applies the service-area precedence rules under one
// missing-data policy.
type Matcher struct {
	policy MissingDataPolicy
}

// NewMatcher creates a matcher. An unrecognized policy falls back to
// PolicyExclude.
func NewMatcher(policy MissingDataPolicy) Matcher {
	if !policy.Valid() {
		policy = PolicyExclude
	}

	return Matcher{policy: policy}
}

// Policy returns the matcher's missing-data policy.
func (m Matcher) Policy() MissingDataPolicy {
	return m.policy
}

// ServesZip decides whether a business serves the target ZIP, with strict
// short-circuiting precedence:
//
//  1. nationwide flag set -> serves every ZIP, malformed ones included
//  2. non-empty explicit ZIP set -> exact string membership, no
//     normalization of leading zeros or formatting
//  3. otherwise -> equality against the single registration ZIP
//
// An empty-but-present ZIP set falls through to case 3 rather than
// matching nothing. When no data exists at any step the missing-data
// policy decides.
func (m Matcher) ServesZip(facts Facts, zip string) bool {
	if facts.Nationwide {
		return true
	}

	if len(facts.ZipCodes) > 0 {
		return slices.Contains(facts.ZipCodes, zip)
	}

	if facts.PrimaryZip != "" {
		return facts.PrimaryZip == zip
	}

	return m.policy == PolicyInclude
}
