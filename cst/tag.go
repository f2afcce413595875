package cst

import "strings"

// Tag is a parsed tag property. A verbatim tag "!<uri>" only sets Verbatim;
// every other form sets Handle and Suffix.
type Tag struct {
	Verbatim string `yaml:"verbatim,omitempty" json:"verbatim,omitempty"`
	Handle   string `yaml:"handle,omitempty" json:"handle,omitempty"`
	Suffix   string `yaml:"suffix,omitempty" json:"suffix,omitempty"`
}

// IsVerbatim reports whether the tag was written as "!<uri>".
func (t Tag) IsVerbatim() bool { return t.Verbatim != "" }

// IsNonSpecific reports whether the tag is a lone "!".
func (t Tag) IsNonSpecific() bool {
	return !t.IsVerbatim() && t.Handle == "!" && t.Suffix == ""
}

// ParseTag parses the raw text of a tag marker such as "!!str", "!e!foo",
// "!local", "!" or "!<tag:yaml.org,2002:str>". The second result is false
// when raw does not start with "!".
func ParseTag(raw string) (Tag, bool) {
	if !strings.HasPrefix(raw, "!") {
		return Tag{}, false
	}
	if strings.HasPrefix(raw, "!<") && strings.HasSuffix(raw, ">") && len(raw) > 3 {
		return Tag{Verbatim: raw[2 : len(raw)-1]}, true
	}
	// A named handle ends at the second "!".
	if i := strings.IndexByte(raw[1:], '!'); i >= 0 {
		return Tag{Handle: raw[:i+2], Suffix: raw[i+2:]}, true
	}
	return Tag{Handle: "!", Suffix: raw[1:]}, true
}

// ParseAnchor returns the name of an "&name" marker. The second result is
// false when raw does not start with "&".
func ParseAnchor(raw string) (string, bool) {
	if !strings.HasPrefix(raw, "&") {
		return "", false
	}
	return raw[1:], true
}
