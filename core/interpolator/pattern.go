package interpolator

import (
	"strings"
	"unicode"
)

// Pattern syntax, scanned left to right with no overlap:
//
//	@{f:Lady|m:Sir|All}       unnamed pattern
//	@gender{f:Lady|m:Sir}     named pattern, resolved against the strict database
//	@@{...}  \@{...}          escaped, emitted verbatim as "@{...}"
//
// A group is "tokens:text" where tokens is a comma-separated list, each name
// optionally prefixed with ! for negative matching. A trailing segment with
// no colon is the free-text fallback.

const (
	escapeChar = '\\'
	patternAt  = '@'
	// loudMarker as the whole replacement text substitutes the matched
	// token's description instead of literal text.
	loudMarker = "~"
)

// match is one pattern occurrence in the scanned text.
type match struct {
	start   int // index of the first byte of the occurrence, escape prefix included
	end     int // index just past the closing brace
	escaped bool
	kind    string // "" for unnamed patterns
	body    string
	raw     string // "@kind{body}", what escaped occurrences emit
}

// tokenRef is one token mention inside a group. resolved carries the name
// used for matching: the true token when alias resolution is on, the
// literal name otherwise.
type tokenRef struct {
	name     string
	negated  bool
	resolved string
}

// group is one |-separated alternative inside a pattern body.
type group struct {
	refs []tokenRef
	text string
	free bool
}

// scan finds every pattern occurrence in text. Escaped occurrences are
// reported with escaped set so the caller emits them verbatim.
func scan(text string) []match {
	var matches []match

	for i := 0; i < len(text); {
		c := text[i]

		if c == escapeChar && i+1 < len(text) && text[i+1] == patternAt {
			if m, ok := parsePattern(text, i+1); ok {
				m.start = i
				m.escaped = true
				matches = append(matches, m)
				i = m.end
				continue
			}
		}

		if c == patternAt {
			if i+1 < len(text) && text[i+1] == patternAt {
				if m, ok := parsePattern(text, i+1); ok {
					m.start = i
					m.escaped = true
					matches = append(matches, m)
					i = m.end
					continue
				}
			}
			if m, ok := parsePattern(text, i); ok {
				matches = append(matches, m)
				i = m.end
				continue
			}
		}

		i++
	}

	return matches
}

// parsePattern attempts to read "@kind{body}" starting at text[start],
// which must be the @ character. The kind may be empty; the body must not.
func parsePattern(text string, start int) (match, bool) {
	i := start + 1

	kindStart := i
	for i < len(text) && isKindChar(rune(text[i])) {
		i++
	}
	if i >= len(text) || text[i] != '{' {
		return match{}, false
	}
	kind := text[kindStart:i]

	// Walk to the closing brace. %{...} placeholders inside the body belong
	// to a later substitution pass, so their braces are consumed whole rather
	// than terminating the pattern.
	bodyStart := i + 1
	j := bodyStart
	for j < len(text) && text[j] != '}' {
		if text[j] == '%' && j+1 < len(text) && text[j+1] == '{' {
			inner := strings.IndexByte(text[j+2:], '}')
			if inner < 0 {
				return match{}, false
			}
			j += inner + 3
			continue
		}
		j++
	}
	if j >= len(text) || j == bodyStart {
		return match{}, false
	}
	body := text[bodyStart:j]

	return match{
		start: start,
		end:   j + 1,
		kind:  kind,
		body:  body,
		raw:   text[start : j+1],
	}, true
}

func isKindChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

// parseBody splits a pattern body into its groups. Any segment without a
// colon is a free-text group; when several exist the last one wins as the
// fallback.
func parseBody(body string) []group {
	segments := strings.Split(body, "|")
	groups := make([]group, 0, len(segments))

	for _, seg := range segments {
		colon := strings.IndexByte(seg, ':')
		if colon < 0 {
			groups = append(groups, group{text: seg, free: true})
			continue
		}

		names := strings.Split(seg[:colon], ",")
		refs := make([]tokenRef, 0, len(names))
		for _, name := range names {
			name = strings.TrimSpace(name)
			negated := strings.HasPrefix(name, "!")
			if negated {
				name = name[1:]
			}
			refs = append(refs, tokenRef{name: name, negated: negated, resolved: name})
		}
		groups = append(groups, group{refs: refs, text: seg[colon+1:]})
	}

	return groups
}

// freeText returns the fallback text of a parsed body, if any.
func freeText(groups []group) (string, bool) {
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i].free {
			return groups[i].text, true
		}
	}
	return "", false
}
