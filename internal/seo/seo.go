package seo

// Alternate links a language variant of the current page.
type Alternate struct {
	Href     string
	Hreflang string
}

// Meta is the head metadata of a page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Alternates  []Alternate
	JSONLD      []string
}
