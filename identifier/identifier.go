// Package identifier parses and renders SQL identifiers.
//
// Two forms exist side by side: the strict form produced by [Parse] and
// [ParseQualified], which rejects anything outside the identifier grammar,
// and the loose form produced by [Loose], which accepts whatever a driver
// hands back and is used to keep legacy metadata usable.
package identifier

import (
	"strings"

	"github.com/aarondl/opt/null"

	"github.com/BenMorel/dbal"
)

// Name is a single identifier segment. It remembers the raw text as
// supplied, the unquoted text, and whether the caller quoted it.
type Name struct {
	raw    string
	name   string
	quoted bool
}

// New returns an unquoted name, for callers building a schema in code.
func New(name string) Name {
	return Name{raw: name, name: name}
}

// Quoted returns an explicitly quoted name. A quoted name is always
// rendered with the dialect's quote characters, regardless of keyword
// collisions.
func Quoted(name string) Name {
	return Name{raw: `"` + name + `"`, name: name, quoted: true}
}

// Loose wraps a raw identifier without validating it. Every quote
// character anywhere in the string is stripped, matching how legacy
// metadata was normalized before the strict grammar existed. It never
// fails; an empty result is the caller's problem.
func Loose(raw string) Name {
	return Name{
		raw:    raw,
		name:   trimQuotes(raw),
		quoted: isQuoted(raw),
	}
}

var quoteStripper = strings.NewReplacer("`", "", `"`, "", "[", "", "]", "")

func trimQuotes(raw string) string {
	return quoteStripper.Replace(raw)
}

func isQuoted(raw string) bool {
	if raw == "" {
		return false
	}
	switch raw[0] {
	case '"', '`', '[':
		return true
	}
	return false
}

// Raw returns the identifier exactly as supplied.
func (n Name) Raw() string { return n.raw }

// Unquoted returns the identifier text without quotes.
func (n Name) Unquoted() string { return n.name }

// IsQuoted reports whether the caller explicitly quoted the identifier.
func (n Name) IsQuoted() bool { return n.quoted }

func (n Name) String() string { return n.raw }

// Render returns the identifier as it should appear in SQL for the given
// dialect: quoted if the caller quoted it or if it collides with one of
// the dialect's reserved keywords, verbatim otherwise. Loose names may
// carry an inline qualifier; each dot-separated part is rendered on its
// own, the way drivers expect qualified identifiers to be quoted.
func (n Name) Render(d dbal.Dialect) string {
	var sb strings.Builder
	for i, part := range strings.Split(n.name, ".") {
		if i != 0 {
			sb.WriteByte('.')
		}
		if n.quoted || d.IsReservedKeyword(part) {
			d.WriteQuoted(&sb, part)
		} else {
			sb.WriteString(part)
		}
	}
	return sb.String()
}

// Qualified is an identifier with an optional qualifier segment, such as
// a schema-qualified table name.
type Qualified struct {
	qualifier null.Val[Name]
	name      Name
}

// NewQualified returns an unqualified Qualified wrapping the given name.
func NewQualified(name Name) Qualified {
	return Qualified{name: name}
}

// NewQualifiedWith returns a Qualified with both segments set.
func NewQualifiedWith(qualifier, name Name) Qualified {
	return Qualified{qualifier: null.From(qualifier), name: name}
}

// Qualifier returns the qualifier segment, unset when the identifier was
// not qualified.
func (q Qualified) Qualifier() null.Val[Name] { return q.qualifier }

// Name returns the final segment.
func (q Qualified) Name() Name { return q.name }

// Raw returns the identifier as supplied, including the qualifier.
func (q Qualified) Raw() string {
	if q.qualifier.IsSet() {
		return q.qualifier.MustGet().Raw() + "." + q.name.Raw()
	}
	return q.name.Raw()
}

func (q Qualified) String() string { return q.Raw() }

// Render renders each segment with [Name.Render] and joins them with a dot.
func (q Qualified) Render(d dbal.Dialect) string {
	if q.qualifier.IsSet() {
		return q.qualifier.MustGet().Render(d) + "." + q.name.Render(d)
	}
	return q.name.Render(d)
}
