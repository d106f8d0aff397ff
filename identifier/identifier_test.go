package identifier_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/BenMorel/dbal/dialect/mysql"
	"github.com/BenMorel/dbal/dialect/psql"
	"github.com/BenMorel/dbal/identifier"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		unquoted string
		quoted   bool
		wantErr  error
	}{
		{name: "plain", raw: "users", unquoted: "users"},
		{name: "underscore", raw: "_users", unquoted: "_users"},
		{name: "dollar", raw: "users$1", unquoted: "users$1"},
		{name: "double quoted", raw: `"users"`, unquoted: "users", quoted: true},
		{name: "backtick quoted", raw: "`users`", unquoted: "users", quoted: true},
		{name: "bracket quoted", raw: "[users]", unquoted: "users", quoted: true},
		{name: "quoted keyword", raw: `"order"`, unquoted: "order", quoted: true},
		{name: "quoted with space", raw: `"user names"`, unquoted: "user names", quoted: true},
		{name: "escaped double quote", raw: `"a""b"`, unquoted: `a"b`, quoted: true},
		{name: "escaped bracket", raw: "[a]]b]", unquoted: "a]b", quoted: true},
		{name: "empty", raw: "", wantErr: identifier.ErrEmpty},
		{name: "empty quoted", raw: `""`, wantErr: identifier.ErrEmpty},
		{name: "leading digit", raw: "1users", wantErr: identifier.ErrSyntax},
		{name: "embedded dash", raw: "a-b", wantErr: identifier.ErrSyntax},
		{name: "embedded space", raw: "a b", wantErr: identifier.ErrSyntax},
		{name: "embedded dot", raw: "a.b", wantErr: identifier.ErrSyntax},
		{name: "unterminated quote", raw: `"users`, wantErr: identifier.ErrSyntax},
		{name: "trailing garbage after quote", raw: `"users"x`, wantErr: identifier.ErrSyntax},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parsed, err := identifier.Parse(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.raw, err)
			}

			if parsed.Raw() != tt.raw {
				t.Errorf("Raw() = %q, want %q", parsed.Raw(), tt.raw)
			}
			if parsed.Unquoted() != tt.unquoted {
				t.Errorf("Unquoted() = %q, want %q", parsed.Unquoted(), tt.unquoted)
			}
			if parsed.IsQuoted() != tt.quoted {
				t.Errorf("IsQuoted() = %v, want %v", parsed.IsQuoted(), tt.quoted)
			}
		})
	}
}

func TestParseQualified(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		qualifier string
		final     string
		wantErr   error
	}{
		{name: "unqualified", raw: "users", final: "users"},
		{name: "qualified", raw: "public.users", qualifier: "public", final: "users"},
		{name: "quoted segments", raw: `"my schema"."my table"`, qualifier: "my schema", final: "my table"},
		{name: "mixed quoting", raw: "public.`order`", qualifier: "public", final: "order"},
		{name: "too many segments", raw: "a.b.c", wantErr: identifier.ErrSyntax},
		{name: "trailing dot", raw: "a.", wantErr: identifier.ErrEmpty},
		{name: "leading dot", raw: ".b", wantErr: identifier.ErrSyntax},
		{name: "empty", raw: "", wantErr: identifier.ErrEmpty},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parsed, err := identifier.ParseQualified(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseQualified(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQualified(%q) unexpected error: %v", tt.raw, err)
			}

			if parsed.Name().Unquoted() != tt.final {
				t.Errorf("Name() = %q, want %q", parsed.Name().Unquoted(), tt.final)
			}
			if tt.qualifier == "" {
				if parsed.Qualifier().IsSet() {
					t.Errorf("Qualifier() = %q, want unset", parsed.Qualifier().MustGet())
				}
			} else {
				if !parsed.Qualifier().IsSet() {
					t.Fatalf("Qualifier() unset, want %q", tt.qualifier)
				}
				if got := parsed.Qualifier().MustGet().Unquoted(); got != tt.qualifier {
					t.Errorf("Qualifier() = %q, want %q", got, tt.qualifier)
				}
			}
			if parsed.Raw() != tt.raw {
				t.Errorf("Raw() = %q, want %q", parsed.Raw(), tt.raw)
			}
		})
	}
}

func TestParseColumns(t *testing.T) {
	t.Parallel()

	names, err := identifier.ParseColumns([]string{"id", `"tenant id"`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make([]string, len(names))
	for i, n := range names {
		got[i] = n.Unquoted()
	}
	if diff := cmp.Diff([]string{"id", "tenant id"}, got); diff != "" {
		t.Errorf("parsed columns mismatch (-want +got):\n%s", diff)
	}

	if _, err := identifier.ParseColumns([]string{"id", "not an identifier"}); !errors.Is(err, identifier.ErrSyntax) {
		t.Errorf("error = %v, want %v", err, identifier.ErrSyntax)
	}
}

func TestLoose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		unquoted string
		quoted   bool
	}{
		{raw: "users", unquoted: "users", quoted: false},
		{raw: `"users"`, unquoted: "users", quoted: true},
		{raw: "`users`", unquoted: "users", quoted: true},
		{raw: "[users]", unquoted: "users", quoted: true},
		// legacy trim drops quote characters anywhere, not just at the edges
		{raw: `us"ers`, unquoted: "users", quoted: false},
		{raw: `"public"."users"`, unquoted: "public.users", quoted: true},
		{raw: "", unquoted: "", quoted: false},
	}

	for _, tt := range tests {
		got := identifier.Loose(tt.raw)
		if got.Raw() != tt.raw || got.Unquoted() != tt.unquoted || got.IsQuoted() != tt.quoted {
			t.Errorf("Loose(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.raw, got.Raw(), got.Unquoted(), got.IsQuoted(), tt.raw, tt.unquoted, tt.quoted)
		}
	}
}

func TestNameRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    identifier.Name
		psql  string
		mysql string
	}{
		{name: "plain", in: identifier.New("users"), psql: "users", mysql: "users"},
		{name: "explicitly quoted", in: identifier.Quoted("users"), psql: `"users"`, mysql: "`users`"},
		{name: "reserved word", in: identifier.New("order"), psql: `"order"`, mysql: "`order`"},
		{name: "reserved on one platform only", in: identifier.New("user"), psql: `"user"`, mysql: "user"},
		{name: "loose with qualifier", in: identifier.Loose("public.order"), psql: `public."order"`, mysql: "public.`order`"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.in.Render(psql.Dialect{}); got != tt.psql {
				t.Errorf("psql render = %q, want %q", got, tt.psql)
			}
			if got := tt.in.Render(mysql.Dialect{}); got != tt.mysql {
				t.Errorf("mysql render = %q, want %q", got, tt.mysql)
			}
		})
	}
}

func TestQualifiedRender(t *testing.T) {
	t.Parallel()

	q, err := identifier.ParseQualified(`"my schema".users`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := q.Render(psql.Dialect{}); got != `"my schema".users` {
		t.Errorf("Render() = %q, want %q", got, `"my schema".users`)
	}

	q, err = identifier.ParseQualified("public.table")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := q.Render(mysql.Dialect{}); got != "public.`table`" {
		t.Errorf("Render() = %q, want %q", got, "public.`table`")
	}
}
