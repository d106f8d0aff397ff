package schema

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"

	"github.com/aarondl/opt/null"
	"github.com/spf13/cast"

	"github.com/BenMorel/dbal"
	"github.com/BenMorel/dbal/identifier"
)

// ForeignKeyDef is the raw input a foreign key constraint is built from,
// as supplied by schema introspection or by a caller building a new
// schema in code.
type ForeignKeyDef struct {
	// Name is the constraint name; empty means an anonymous constraint.
	Name string
	// ReferencingColumns are the raw column names on the declaring table.
	ReferencingColumns []string
	// ReferencedTable is the raw, possibly schema-qualified table name.
	ReferencedTable string
	// ReferencedColumns are the raw column names on the referenced table.
	ReferencedColumns []string
	// Options is the free-form option bag; see the Option* constants.
	Options Options
	// Reporter receives notices about non-conforming metadata; nil means
	// they are discarded.
	Reporter Reporter
}

// ForeignKey is a foreign key constraint. Construction never fails: every
// name is parsed and every option resolved eagerly, and whatever does not
// conform is recorded as an unset field instead of an error. The raw
// accessors always reflect exactly what was supplied; the strict
// accessors fail, with a field-specific error, on any field that did not
// parse. A ForeignKey is immutable after construction and safe for
// concurrent reads.
type ForeignKey struct {
	name           string
	localColumns   []identifier.Name // loose, insertion-ordered, deduplicated
	foreignTable   identifier.Name   // loose
	foreignColumns []identifier.Name // loose, insertion-ordered, deduplicated
	options        Options

	referencingColumns []identifier.Name // empty means the list did not parse
	referencedTable    null.Val[identifier.Qualified]
	referencedColumns  []identifier.Name
	matchType          null.Val[MatchType]
	onUpdate           null.Val[ReferentialAction]
	onDelete           null.Val[ReferentialAction]
	deferrability      null.Val[Deferrability]
}

// NewForeignKey builds a constraint from raw metadata.
func NewForeignKey(def ForeignKeyDef) *ForeignKey {
	rep := def.Reporter
	if rep == nil {
		rep = NopReporter
	}

	fk := &ForeignKey{
		name:           def.Name,
		localColumns:   looseColumns(def.ReferencingColumns),
		foreignTable:   identifier.Loose(def.ReferencedTable),
		foreignColumns: looseColumns(def.ReferencedColumns),
		options:        maps.Clone(def.Options),
	}

	fk.referencingColumns = strictColumns(def.ReferencingColumns, rep, def.Name, "referencing")
	fk.referencedColumns = strictColumns(def.ReferencedColumns, rep, def.Name, "referenced")

	table, err := identifier.ParseQualified(def.ReferencedTable)
	if err != nil {
		rep.Deprecatedf("foreign key constraint %q: referenced table name %q does not conform to the identifier grammar: %v",
			def.Name, def.ReferencedTable, err)
	} else {
		fk.referencedTable = null.From(table)
	}

	fk.matchType = resolveMatchType(fk.options)
	fk.onUpdate = resolveReferentialAction(fk.options, OptionOnUpdate)
	fk.onDelete = resolveReferentialAction(fk.options, OptionOnDelete)
	fk.deferrability = resolveDeferrability(fk.options, rep, def.Name)

	return fk
}

func looseColumns(raws []string) []identifier.Name {
	cols := make([]identifier.Name, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))
	for _, raw := range raws {
		col := identifier.Loose(raw)
		if _, dup := seen[col.Unquoted()]; dup {
			continue
		}
		seen[col.Unquoted()] = struct{}{}
		cols = append(cols, col)
	}
	return cols
}

func strictColumns(raws []string, rep Reporter, name, side string) []identifier.Name {
	cols, err := identifier.ParseColumns(raws)
	if err != nil {
		rep.Deprecatedf("foreign key constraint %q: %s column list does not conform to the identifier grammar: %v",
			name, side, err)
		return nil
	}
	return cols
}

// Name returns the constraint name, empty for an anonymous constraint.
func (f *ForeignKey) Name() string { return f.name }

// LocalColumns returns the raw referencing column names as supplied,
// order preserved, duplicates collapsed.
func (f *ForeignKey) LocalColumns() []string {
	return rawNames(f.localColumns)
}

// UnquotedLocalColumns returns the referencing column names with quote
// characters stripped.
func (f *ForeignKey) UnquotedLocalColumns() []string {
	return unquotedNames(f.localColumns)
}

// QuotedLocalColumns returns the referencing column names quoted for the
// given dialect where needed.
func (f *ForeignKey) QuotedLocalColumns(d dbal.Dialect) []string {
	return renderedNames(f.localColumns, d)
}

// ForeignTableName returns the raw referenced table name as supplied.
func (f *ForeignKey) ForeignTableName() string {
	return f.foreignTable.Raw()
}

// QuotedForeignTableName returns the referenced table name quoted for the
// given dialect where needed, quoting each qualifier segment on its own.
func (f *ForeignKey) QuotedForeignTableName(d dbal.Dialect) string {
	return f.foreignTable.Render(d)
}

// UnqualifiedForeignTableName strips any qualifier, everything up to the
// last dot, from the referenced table name and lower-cases the remainder.
// It works on the raw string and keeps working when the strict parser
// failed; use [ForeignKey.ReferencedTableName] for the validated form.
func (f *ForeignKey) UnqualifiedForeignTableName() string {
	name := f.foreignTable.Unquoted()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}

// ForeignColumns returns the raw referenced column names as supplied,
// order preserved, duplicates collapsed.
func (f *ForeignKey) ForeignColumns() []string {
	return rawNames(f.foreignColumns)
}

// UnquotedForeignColumns returns the referenced column names with quote
// characters stripped.
func (f *ForeignKey) UnquotedForeignColumns() []string {
	return unquotedNames(f.foreignColumns)
}

// QuotedForeignColumns returns the referenced column names quoted for the
// given dialect where needed.
func (f *ForeignKey) QuotedForeignColumns(d dbal.Dialect) []string {
	return renderedNames(f.foreignColumns, d)
}

func rawNames(cols []identifier.Name) []string {
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Raw()
	}
	return names
}

func unquotedNames(cols []identifier.Name) []string {
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Unquoted()
	}
	return names
}

func renderedNames(cols []identifier.Name, d dbal.Dialect) []string {
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Render(d)
	}
	return names
}

// ReferencingColumnNames returns the parsed referencing column names, or
// [ErrInvalidReferencingColumns] when the supplied list was empty or any
// element did not parse.
func (f *ForeignKey) ReferencingColumnNames() ([]identifier.Name, error) {
	if len(f.referencingColumns) == 0 {
		return nil, f.invalid(ErrInvalidReferencingColumns)
	}
	return slices.Clone(f.referencingColumns), nil
}

// ReferencedTableName returns the parsed referenced table name, or
// [ErrInvalidReferencedTable] when it did not parse.
func (f *ForeignKey) ReferencedTableName() (identifier.Qualified, error) {
	if !f.referencedTable.IsSet() {
		return identifier.Qualified{}, f.invalid(ErrInvalidReferencedTable)
	}
	return f.referencedTable.MustGet(), nil
}

// ReferencedColumnNames returns the parsed referenced column names, or
// [ErrInvalidReferencedColumns] when the supplied list was empty or any
// element did not parse.
func (f *ForeignKey) ReferencedColumnNames() ([]identifier.Name, error) {
	if len(f.referencedColumns) == 0 {
		return nil, f.invalid(ErrInvalidReferencedColumns)
	}
	return slices.Clone(f.referencedColumns), nil
}

// MatchType returns the resolved match type, or [ErrInvalidMatchType]
// when the match option carried an unknown value.
func (f *ForeignKey) MatchType() (MatchType, error) {
	if !f.matchType.IsSet() {
		return "", f.invalid(ErrInvalidMatchType)
	}
	return f.matchType.MustGet(), nil
}

// OnUpdateAction returns the resolved ON UPDATE action, or
// [ErrInvalidOnUpdate] when the onUpdate option carried an unknown value.
func (f *ForeignKey) OnUpdateAction() (ReferentialAction, error) {
	if !f.onUpdate.IsSet() {
		return "", f.invalid(ErrInvalidOnUpdate)
	}
	return f.onUpdate.MustGet(), nil
}

// OnDeleteAction returns the resolved ON DELETE action, or
// [ErrInvalidOnDelete] when the onDelete option carried an unknown value.
func (f *ForeignKey) OnDeleteAction() (ReferentialAction, error) {
	if !f.onDelete.IsSet() {
		return "", f.invalid(ErrInvalidOnDelete)
	}
	return f.onDelete.MustGet(), nil
}

// Deferrability returns the resolved deferrability, or
// [ErrInvalidDeferrability] when the deferred/deferrable options were
// contradictory.
func (f *ForeignKey) Deferrability() (Deferrability, error) {
	if !f.deferrability.IsSet() {
		return "", f.invalid(ErrInvalidDeferrability)
	}
	return f.deferrability.MustGet(), nil
}

// OnUpdate returns the raw, uppercased onUpdate option for display, or
// the empty string when no explicit action was given. NO ACTION and
// RESTRICT count as no explicit action. This is the loose legacy view;
// [ForeignKey.OnUpdateAction] is the validated one.
func (f *ForeignKey) OnUpdate() string {
	return f.onEvent(OptionOnUpdate)
}

// OnDelete is the ON DELETE counterpart of [ForeignKey.OnUpdate].
func (f *ForeignKey) OnDelete() string {
	return f.onEvent(OptionOnDelete)
}

func (f *ForeignKey) onEvent(key string) string {
	v, ok := f.options[key]
	if !ok {
		return ""
	}
	action := strings.ToUpper(strings.TrimSpace(cast.ToString(v)))
	if action == string(NoAction) || action == string(Restrict) {
		return ""
	}
	return action
}

// HasOption reports whether the option bag carries the given key.
func (f *ForeignKey) HasOption(name string) bool {
	_, ok := f.options[name]
	return ok
}

// Option returns the value stored under the given key. The second return
// distinguishes a missing key from a stored nil.
func (f *ForeignKey) Option(name string) (any, bool) {
	v, ok := f.options[name]
	return v, ok
}

// Options returns a copy of the full option bag, including keys this
// model does not interpret.
func (f *ForeignKey) Options() Options {
	return maps.Clone(f.options)
}

// IntersectsIndexColumns reports whether at least one of the index's
// columns names one of this constraint's referencing columns, comparing
// unquoted names case-insensitively. Expression columns have no name to
// compare and are skipped. Schema-diff logic uses this to tell whether
// dropping or altering the index would break the constraint.
func (f *ForeignKey) IntersectsIndexColumns(idx Index) bool {
	for _, indexColumn := range idx.NonExpressionColumns() {
		for _, col := range f.localColumns {
			if strings.EqualFold(col.Unquoted(), indexColumn) {
				return true
			}
		}
	}
	return false
}

type foreignKeyJSON struct {
	Name           string   `json:"name"`
	Columns        []string `json:"columns"`
	ForeignTable   string   `json:"foreign_table"`
	ForeignColumns []string `json:"foreign_columns"`
	Options        Options  `json:"options,omitempty"`
}

// MarshalJSON serializes the raw side of the constraint; the parsed
// fields are derived data and are not written.
func (f *ForeignKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(foreignKeyJSON{
		Name:           f.name,
		Columns:        f.LocalColumns(),
		ForeignTable:   f.ForeignTableName(),
		ForeignColumns: f.ForeignColumns(),
		Options:        f.options,
	})
}

// UnmarshalJSON rebuilds the constraint through [NewForeignKey], so the
// parsed fields are recomputed rather than trusted from the wire.
func (f *ForeignKey) UnmarshalJSON(data []byte) error {
	var tmp foreignKeyJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}

	*f = *NewForeignKey(ForeignKeyDef{
		Name:               tmp.Name,
		ReferencingColumns: tmp.Columns,
		ReferencedTable:    tmp.ForeignTable,
		ReferencedColumns:  tmp.ForeignColumns,
		Options:            tmp.Options,
	})

	return nil
}
