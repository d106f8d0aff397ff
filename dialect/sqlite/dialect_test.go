package sqlite

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

	if !d.IsReservedKeyword("autoincrement") {
		t.Error("expected autoincrement to be reserved")
	}
	if !d.IsReservedKeyword("Deferred") {
		t.Error("expected Deferred to be reserved")
	}
	if d.IsReservedKeyword("users") {
		t.Error("did not expect users to be reserved")
	}
}
