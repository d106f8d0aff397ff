package mysql

import (
	"strings"
	"testing"
)

func TestWriteQuoted(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	Dialect{}.WriteQuoted(&sb, "users")

	if sb.String() != "`users`" {
		t.Errorf("WriteQuoted() = %q, want %q", sb.String(), "`users`")
	}
}

func TestIsReservedKeyword(t *testing.T) {
	t.Parallel()

	d := Dialect{}

	if !d.IsReservedKeyword("select") {
		t.Error("expected select to be reserved")
	}
	if !d.IsReservedKeyword("Interval") {
		t.Error("expected Interval to be reserved")
	}
	if d.IsReservedKeyword("users") {
		t.Error("did not expect users to be reserved")
	}
	// USER is only a non-reserved keyword in MySQL
	if d.IsReservedKeyword("user") {
		t.Error("did not expect user to be reserved")
	}
}
