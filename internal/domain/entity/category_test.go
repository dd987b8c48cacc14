package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRef_UnmarshalBareString(t *testing.T) {
	var ref CategoryRef
	require.NoError(t, json.Unmarshal([]byte(`"Flooring"`), &ref))

	assert.Equal(t, "Flooring", ref.Name)
	assert.Empty(t, ref.FullPath)
	assert.Equal(t, "Flooring", ref.Path())
}

func TestCategoryRef_UnmarshalBareStringWithPath(t *testing.T) {
	var ref CategoryRef
	require.NoError(t, json.Unmarshal([]byte(`"Home, Lawn, and Manual Labor > Flooring"`), &ref))

	assert.Equal(t, "Flooring", ref.Name)
	assert.Equal(t, "Home, Lawn, and Manual Labor > Flooring", ref.FullPath)
	assert.Equal(t, "Home, Lawn, and Manual Labor > Flooring", ref.Path())
}

func TestCategoryRef_UnmarshalFullPathObject(t *testing.T) {
	var ref CategoryRef
	require.NoError(t, json.Unmarshal(
		[]byte(`{"fullPath": "Home, Lawn, and Manual Labor > Flooring"}`), &ref))

	assert.Equal(t, "Flooring", ref.Name)
	assert.Equal(t, "Home, Lawn, and Manual Labor > Flooring", ref.FullPath)
}

func TestCategoryRef_UnmarshalNameCategoryObject(t *testing.T) {
	var ref CategoryRef
	require.NoError(t, json.Unmarshal(
		[]byte(`{"name": "Flooring", "category": "Home, Lawn, and Manual Labor"}`), &ref))

	assert.Equal(t, "Flooring", ref.Name)
	assert.Equal(t, "Home, Lawn, and Manual Labor > Flooring", ref.FullPath)
}

func TestBusiness_CategoryPaths(t *testing.T) {
	payload := []byte(`{
		"id": "biz-1",
		"categories": [
			"Home, Lawn, and Manual Labor > Flooring",
			{"fullPath": "Home, Lawn, and Manual Labor > Landscaping"},
			{"name": "Lawyers", "category": "Legal Services"}
		]
	}`)

	var business Business
	require.NoError(t, json.Unmarshal(payload, &business))

	assert.Equal(t, []string{
		"Home, Lawn, and Manual Labor > Flooring",
		"Home, Lawn, and Manual Labor > Landscaping",
		"Legal Services > Lawyers",
	}, business.CategoryPaths())
}
