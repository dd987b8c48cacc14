package category

import "strings"

// PathSeparator delimits segments of a subcategory path, e.g.
// "Home, Lawn, and Manual Labor > Flooring".
const PathSeparator = ">"

// IsPath reports whether a category identifier is a subcategory path.
func IsPath(categoryID string) bool {
	return strings.Contains(categoryID, PathSeparator)
}

// RootSegment returns the first segment of a path, trimmed. For a plain
// category name it returns the name itself.
func RootSegment(path string) string {
	segments := strings.Split(path, PathSeparator)

	return strings.TrimSpace(segments[0])
}

// TerminalSegment returns the last segment of a path, trimmed.
func TerminalSegment(path string) string {
	segments := strings.Split(path, PathSeparator)

	return strings.TrimSpace(segments[len(segments)-1])
}

// MatchesPath decides whether a business whose stored subcategory paths
// are given should appear on the page for the requested path.
//
// Exact full-path match (whitespace-trimmed, case-sensitive) is
// preferred. Only when the exact check across the business's entire path
// list comes up empty does the terminal-segment fallback apply: the
// stored terminal segment matches the requested one by equality, or by a
// relaxed case-insensitive first-token prefix relation so that near-miss
// spellings like "Flooring" and "Floor Installation" still line up.
func MatchesPath(storedPaths []string, requestedPath string) bool {
	requested := strings.TrimSpace(requestedPath)
	if requested == "" {
		return false
	}

	for _, stored := range storedPaths {
		if strings.TrimSpace(stored) == requested {
			return true
		}
	}

	requestedTerminal := TerminalSegment(requested)
	for _, stored := range storedPaths {
		if terminalMatches(TerminalSegment(stored), requestedTerminal) {
			return true
		}
	}

	return false
}

// terminalMatches compares two terminal segments: exact equality first,
// then the relaxed first-token prefix relation.
func terminalMatches(stored, requested string) bool {
	if stored == requested {
		return true
	}

	return tokenPrefixRelated(stored, requested)
}

// tokenPrefixRelated reports whether the lowercased first tokens of two
// segments are prefixes of each other, e.g. "Flooring" and
// "Floor Installation" relate through "floor"/"flooring".
func tokenPrefixRelated(a, b string) bool {
	tokenA := firstToken(strings.ToLower(a))
	tokenB := firstToken(strings.ToLower(b))
	if tokenA == "" || tokenB == "" {
		return false
	}

	return strings.HasPrefix(tokenA, tokenB) || strings.HasPrefix(tokenB, tokenA)
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}
