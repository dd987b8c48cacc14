package entity

import (
	"encoding/json"
	"strings"
)

// CategoryRef is one category or subcategory selection on a business.
//
// Historical records store selections in three shapes: a bare string, an
// object carrying a full ">"-delimited path, or an object with separate
// name and category fields. UnmarshalJSON accepts all three; marshaling
// always writes the object form.
type CategoryRef struct {
	Name     string `json:"name,omitempty"`
	FullPath string `json:"fullPath,omitempty"`
}

// categoryRefObject mirrors the historical object shapes on the wire.
type categoryRefObject struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	FullPath string `json:"fullPath"`
}

// UnmarshalJSON normalizes the three historical selection shapes.
func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = refFromString(s)

		return nil
	}

	var obj categoryRefObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	switch {
	case obj.FullPath != "":
		*r = refFromString(obj.FullPath)
		if obj.Name != "" {
			r.Name = strings.TrimSpace(obj.Name)
		}
	case obj.Name != "" && obj.Category != "":
		r.Name = strings.TrimSpace(obj.Name)
		r.FullPath = strings.TrimSpace(obj.Category) + " > " + r.Name
	case obj.Name != "":
		*r = refFromString(obj.Name)
	case obj.Category != "":
		*r = refFromString(obj.Category)
	}

	return nil
}

// NewCategoryRef builds a selection from a bare string, detecting
// ">"-delimited paths.
func NewCategoryRef(s string) CategoryRef {
	return refFromString(s)
}

func refFromString(s string) CategoryRef {
	s = strings.TrimSpace(s)
	ref := CategoryRef{Name: s}
	if strings.Contains(s, ">") {
		ref.FullPath = s
		segments := strings.Split(s, ">")
		ref.Name = strings.TrimSpace(segments[len(segments)-1])
	}

	return ref
}

// Path returns the full ">"-delimited path when the selection carries one,
// otherwise the bare category name.
func (r CategoryRef) Path() string {
	if r.FullPath != "" {
		return strings.TrimSpace(r.FullPath)
	}

	return strings.TrimSpace(r.Name)
}
