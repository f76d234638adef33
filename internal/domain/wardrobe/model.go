package wardrobe

import "strings"

// Well known tags toggled by the wardrobe service or read by the outfit engine.
const (
	TagSaved        = "saved"
	TagRecentlyWorn = "recently worn"
	TagOuterwear    = "outerwear"
	TagLongSleeve   = "long sleeve"
	TagSummer       = "summer"
)

// Item is a single clothing record in the inventory document.
type Item struct {
	ID    int      `json:"id"`
	Label string   `json:"label"`
	Tags  []string `json:"tags"`
	Src   string   `json:"src"`
	Image string   `json:"image,omitempty"`
	Alt   string   `json:"alt,omitempty"`
}

// HasTag reports whether the item carries tag, ignoring case and surrounding space.
func (i Item) HasTag(tag string) bool {
	want := strings.TrimSpace(tag)
	for _, t := range i.Tags {
		if strings.EqualFold(strings.TrimSpace(t), want) {
			return true
		}
	}
	return false
}

// AddTag appends tag unless already present. It reports whether the set changed.
func (i *Item) AddTag(tag string) bool {
	if i.HasTag(tag) {
		return false
	}
	i.Tags = append(i.Tags, tag)
	return true
}

// RemoveTag drops every occurrence of tag. It reports whether the set changed.
func (i *Item) RemoveTag(tag string) bool {
	want := strings.TrimSpace(tag)
	kept := i.Tags[:0]
	removed := false
	for _, t := range i.Tags {
		if strings.EqualFold(strings.TrimSpace(t), want) {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	i.Tags = kept
	return removed
}

// AltText returns the alt text, defaulting to the lower-cased label.
func (i Item) AltText() string {
	if strings.TrimSpace(i.Alt) != "" {
		return i.Alt
	}
	return strings.ToLower(i.Label)
}

// UploadRequest carries a manually uploaded garment photo and its metadata.
type UploadRequest struct {
	Label    string
	Tags     []string
	Alt      string
	Filename string
	Content  []byte
}

// Config wires runtime settings for the wardrobe domain.
type Config struct {
	// PublicBaseURL prefixes stored image keys to build the item src.
	PublicBaseURL  string
	MaxUploadBytes int64
}

// NormalizeTags trims, drops empties and de-duplicates tags case-insensitively.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		clean := strings.TrimSpace(tag)
		if clean == "" {
			continue
		}
		key := strings.ToLower(clean)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, clean)
	}
	return out
}
