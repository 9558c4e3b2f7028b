package annotate

import (
	"html"
	"io"
	"strings"

	xhtml "golang.org/x/net/html"
)

// insertAnchorLabel adds aria-label="<label>" to every anchor opening tag
// in the fragment that does not already carry one. The fragment is walked
// with a tokenizer and reassembled from raw token bytes, so every byte the
// rewrite does not touch — attribute order, quoting, whitespace, text,
// non-anchor tags — survives verbatim. Anchors that already carry an
// aria-label pass through byte-identical, which makes the rewrite
// idempotent. Fragments the tokenizer cannot walk are returned unchanged.
func insertAnchorLabel(markup, label string) string {
	if markup == "" || label == "" {
		return markup
	}

	attr := ` aria-label="` + escapeLabel(label) + `"`
	tokenizer := xhtml.NewTokenizer(strings.NewReader(markup))

	var out strings.Builder
	out.Grow(len(markup) + len(attr))

	changed := false
	for {
		tt := tokenizer.Next()
		if tt == xhtml.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return markup
		}

		raw := string(tokenizer.Raw())
		if (tt == xhtml.StartTagToken || tt == xhtml.SelfClosingTagToken) && isUnlabeledAnchor(tokenizer) {
			out.WriteString(spliceAfterTagName(raw, attr))
			changed = true
			continue
		}
		out.WriteString(raw)
	}

	if !changed {
		return markup
	}
	return out.String()
}

// isUnlabeledAnchor reports whether the current tag token is an anchor
// with no aria-label attribute. Attribute keys are already lowercased by
// the tokenizer.
func isUnlabeledAnchor(tokenizer *xhtml.Tokenizer) bool {
	name, hasAttr := tokenizer.TagName()
	if string(name) != "a" {
		return false
	}
	if !hasAttr {
		return true
	}
	for {
		key, _, more := tokenizer.TagAttr()
		if string(key) == "aria-label" {
			return false
		}
		if !more {
			return true
		}
	}
}

// spliceAfterTagName inserts attr into the raw tag text immediately after
// the tag name, leaving the rest of the attribute list untouched.
func spliceAfterTagName(raw, attr string) string {
	i := 1
	for i < len(raw) && isTagNameByte(raw[i]) {
		i++
	}
	return raw[:i] + attr + raw[i:]
}

func isTagNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return false
}

// escapeLabel entity-encodes the label before it lands inside a quoted
// attribute value, so free-text titles cannot corrupt the attribute list.
func escapeLabel(label string) string {
	return html.EscapeString(label)
}

// HasAnchor reports whether the fragment contains at least one anchor
// opening tag. Hosts can use it to skip widgets that render no links.
func HasAnchor(markup string) bool {
	tokenizer := xhtml.NewTokenizer(strings.NewReader(markup))
	for {
		tt := tokenizer.Next()
		if tt == xhtml.ErrorToken {
			return false
		}
		if tt == xhtml.StartTagToken || tt == xhtml.SelfClosingTagToken {
			if name, _ := tokenizer.TagName(); string(name) == "a" {
				return true
			}
		}
	}
}
