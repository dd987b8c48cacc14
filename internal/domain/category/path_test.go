package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesPath_ExactFullPath(t *testing.T) {
	paths := []string{
		"Home, Lawn, and Manual Labor > Landscaping",
		"Home, Lawn, and Manual Labor > Flooring",
	}

	assert.True(t, MatchesPath(paths, "Home, Lawn, and Manual Labor > Flooring"))
}

func TestMatchesPath_ExactMatchTrimsWhitespace(t *testing.T) {
	paths := []string{"  Home, Lawn, and Manual Labor > Flooring  "}

	assert.True(t, MatchesPath(paths, "Home, Lawn, and Manual Labor > Flooring"))
}

func TestMatchesPath_TerminalFallbackOnlyWhenExactEmpty(t *testing.T) {
	// No stored path equals the request, so the terminal segment
	// "Flooring" may match the near-miss "Floor Installation".
	paths := []string{"Home, Lawn, and Manual Labor > Floor Installation"}

	assert.True(t, MatchesPath(paths, "Home, Lawn, and Manual Labor > Flooring"))
}

func TestMatchesPath_TerminalEquality(t *testing.T) {
	paths := []string{"Home Improvement > Flooring"}

	assert.True(t, MatchesPath(paths, "Home, Lawn, and Manual Labor > Flooring"))
}

func TestMatchesPath_NoMatch(t *testing.T) {
	paths := []string{"Home, Lawn, and Manual Labor > Landscaping"}

	assert.False(t, MatchesPath(paths, "Home, Lawn, and Manual Labor > Flooring"))
	assert.False(t, MatchesPath(nil, "Home, Lawn, and Manual Labor > Flooring"))
	assert.False(t, MatchesPath(paths, ""))
}

func TestTerminalSegment(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "Home, Lawn, and Manual Labor > Flooring", want: "Flooring"},
		{path: "A > B > C", want: "C"},
		{path: "Flooring", want: "Flooring"},
		{path: " Flooring ", want: "Flooring"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TerminalSegment(tt.path))
	}
}

func TestRootSegment(t *testing.T) {
	assert.Equal(t, "Home, Lawn, and Manual Labor",
		RootSegment("Home, Lawn, and Manual Labor > Flooring"))
	assert.Equal(t, "Flooring", RootSegment("Flooring"))
}

func TestIsPath(t *testing.T) {
	assert.True(t, IsPath("A > B"))
	assert.False(t, IsPath("A"))
}
