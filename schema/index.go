package schema

// Index represents an index on a table, as reported by introspection or
// declared by a schema builder.
type Index struct {
	Type    string        `yaml:"type" json:"type"`
	Name    string        `yaml:"name" json:"name"`
	Columns []IndexColumn `yaml:"columns" json:"columns"`
	Unique  bool          `yaml:"unique" json:"unique"`
}

type IndexColumn struct {
	Name         string `yaml:"name" json:"name"`
	Desc         bool   `yaml:"desc" json:"desc"`
	IsExpression bool   `yaml:"is_expression" json:"is_expression"`
}

func (i Index) HasExpressionColumn() bool {
	for _, c := range i.Columns {
		if c.IsExpression {
			return true
		}
	}
	return false
}

func (i Index) NonExpressionColumns() []string {
	cols := make([]string, 0, len(i.Columns))
	for _, c := range i.Columns {
		if !c.IsExpression {
			cols = append(cols, c.Name)
		}
	}

	return cols
}
