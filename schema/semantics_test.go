package schema

import "testing"

func TestParseMatchType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want MatchType
		ok   bool
	}{
		{in: "SIMPLE", want: MatchSimple, ok: true},
		{in: "simple", want: MatchSimple, ok: true},
		{in: "Partial", want: MatchPartial, ok: true},
		{in: "FULL", want: MatchFull, ok: true},
		{in: " full ", want: MatchFull, ok: true},
		{in: "BOGUS", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := ParseMatchType(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseMatchType(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseReferentialAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want ReferentialAction
		ok   bool
	}{
		{in: "CASCADE", want: Cascade, ok: true},
		{in: "cascade", want: Cascade, ok: true},
		{in: "Set Null", want: SetNull, ok: true},
		{in: "SET  DEFAULT", want: SetDefault, ok: true},
		{in: "no action", want: NoAction, ok: true},
		{in: "RESTRICT", want: Restrict, ok: true},
		{in: "SETNULL", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := ParseReferentialAction(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseReferentialAction(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
