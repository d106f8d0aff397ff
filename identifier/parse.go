package identifier

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmpty is returned when an identifier, or a quoted segment of one,
	// has no content.
	ErrEmpty = errors.New("identifier: empty identifier")

	// ErrSyntax is returned when an identifier does not conform to the
	// identifier grammar.
	ErrSyntax = errors.New("identifier: malformed identifier")
)

// Parse parses a single raw identifier segment. The segment is either
// unquoted, starting with a letter or underscore and continuing with
// letters, digits, underscores or dollar signs, or quoted with double
// quotes, backticks or square brackets, with a doubled closing character
// as the escape. Parsing is total: malformed input yields an error, never
// a partial name and never a panic.
func Parse(raw string) (Name, error) {
	name, rest, err := parseSegment(raw)
	if err != nil {
		return Name{}, err
	}
	if rest != "" {
		return Name{}, fmt.Errorf("%w: unexpected %q after segment in %q", ErrSyntax, rest, raw)
	}
	return name, nil
}

// ParseQualified parses an identifier with at most one dot-separated
// qualifier segment, such as "schema.table" or `"my schema"."my table"`.
func ParseQualified(raw string) (Qualified, error) {
	first, rest, err := parseSegment(raw)
	if err != nil {
		return Qualified{}, err
	}
	if rest == "" {
		return NewQualified(first), nil
	}
	if rest[0] != '.' {
		return Qualified{}, fmt.Errorf("%w: unexpected %q after segment in %q", ErrSyntax, rest, raw)
	}

	second, rest, err := parseSegment(rest[1:])
	if err != nil {
		return Qualified{}, err
	}
	if rest != "" {
		return Qualified{}, fmt.Errorf("%w: too many segments in %q", ErrSyntax, raw)
	}
	return NewQualifiedWith(first, second), nil
}

// ParseColumns parses a list of raw column names, all or nothing: the
// error identifies the first element that does not parse, and in that
// case no names are returned at all.
func ParseColumns(raws []string) ([]Name, error) {
	names := make([]Name, 0, len(raws))
	for _, raw := range raws {
		name, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", raw, err)
		}
		names = append(names, name)
	}
	return names, nil
}

func parseSegment(s string) (Name, string, error) {
	if s == "" {
		return Name{}, "", ErrEmpty
	}

	switch s[0] {
	case '"', '`':
		return parseQuotedSegment(s, s[0], s[0])
	case '[':
		return parseQuotedSegment(s, '[', ']')
	}

	if !isIdentStart(s[0]) {
		return Name{}, "", fmt.Errorf("%w: unexpected character %q in %q", ErrSyntax, s[0], s)
	}
	i := 1
	for i < len(s) && isIdentPart(s[i]) {
		i++
	}
	seg := s[:i]
	return Name{raw: seg, name: seg}, s[i:], nil
}

func parseQuotedSegment(s string, open, close byte) (Name, string, error) {
	var content strings.Builder
	i := 1
	for i < len(s) {
		c := s[i]
		if c != close {
			content.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == close {
			content.WriteByte(close)
			i += 2
			continue
		}
		if content.Len() == 0 {
			return Name{}, "", fmt.Errorf("%w: quoted segment in %q", ErrEmpty, s)
		}
		return Name{raw: s[:i+1], name: content.String(), quoted: true}, s[i+1:], nil
	}
	return Name{}, "", fmt.Errorf("%w: unterminated %q quote in %q", ErrSyntax, open, s)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c == '$' || (c >= '0' && c <= '9')
}
