package psql

import (
	"strings"
	"testing"
)

func TestWriteQuoted(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	Dialect{}.WriteQuoted(&sb, "users")

	if sb.String() != `"users"` {
		t.Errorf("WriteQuoted() = %q, want %q", sb.String(), `"users"`)
	}
}

func TestIsReservedKeyword(t *testing.T) {
	t.Parallel()

	d := Dialect{}

	if !d.IsReservedKeyword("select") {
		t.Error("expected select to be reserved")
	}
	if !d.IsReservedKeyword("Order") {
		t.Error("expected Order to be reserved")
	}
	if d.IsReservedKeyword("users") {
		t.Error("did not expect users to be reserved")
	}
	// unreserved keywords are usable as identifiers
	if d.IsReservedKeyword("name") {
		t.Error("did not expect name to be reserved")
	}
}
