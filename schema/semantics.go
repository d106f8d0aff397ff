// Package schema models schema objects independently of any connection.
// Its central type is [ForeignKey], which keeps two views of the same
// constraint alive at once: the raw identifiers exactly as a driver or
// caller supplied them, and a strictly parsed view that refuses to hand
// out malformed data.
package schema

import "strings"

// MatchType is the SQL-standard rule for matching multi-column NULLs in a
// foreign key.
type MatchType string

const (
	MatchSimple  MatchType = "SIMPLE"
	MatchPartial MatchType = "PARTIAL"
	MatchFull    MatchType = "FULL"
)

// ReferentialAction is the effect applied to referencing rows when a
// referenced row is updated or deleted.
type ReferentialAction string

const (
	NoAction   ReferentialAction = "NO ACTION"
	Restrict   ReferentialAction = "RESTRICT"
	Cascade    ReferentialAction = "CASCADE"
	SetNull    ReferentialAction = "SET NULL"
	SetDefault ReferentialAction = "SET DEFAULT"
)

// Deferrability describes whether constraint checking may be postponed to
// transaction commit. Deferred implies deferrable and initially deferred.
type Deferrability string

const (
	NotDeferrable Deferrability = "NOT DEFERRABLE"
	Deferrable    Deferrability = "DEFERRABLE"
	Deferred      Deferrability = "DEFERRED"
)

// ParseMatchType matches a free-form string against the match types.
// Matching is case-insensitive and collapses runs of whitespace; there
// are no partial matches.
func ParseMatchType(s string) (MatchType, bool) {
	switch MatchType(normalize(s)) {
	case MatchSimple:
		return MatchSimple, true
	case MatchPartial:
		return MatchPartial, true
	case MatchFull:
		return MatchFull, true
	}
	return "", false
}

// ParseReferentialAction matches a free-form string against the
// referential actions, with the same rules as [ParseMatchType].
func ParseReferentialAction(s string) (ReferentialAction, bool) {
	switch ReferentialAction(normalize(s)) {
	case NoAction:
		return NoAction, true
	case Restrict:
		return Restrict, true
	case Cascade:
		return Cascade, true
	case SetNull:
		return SetNull, true
	case SetDefault:
		return SetDefault, true
	}
	return "", false
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}
