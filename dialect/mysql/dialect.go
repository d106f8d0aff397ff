package mysql

import (
	"io"
	"strings"
)

type Dialect struct{}

func (d Dialect) WriteQuoted(w io.Writer, s string) {
	w.Write([]byte("`"))
	w.Write([]byte(s))
	w.Write([]byte("`"))
}

func (d Dialect) IsReservedKeyword(s string) bool {
	_, ok := reservedKeywords[strings.ToUpper(s)]
	return ok
}
