package speakers

import (
	"database/sql/driver"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowerFunc is a Unicode-aware replacement for SQLite's ASCII-only lower(),
// registered with the driver in store.go.
const lowerFunc = "unicode_lower"

const selectSpeakers = `SELECT id, prelegent, firma_instytucja, temat_prezentacji,
	problemy_wyzwania, mozliwosci_it_sprzedaz, zaczepka
FROM ` + Table

// Criteria is a normalized search request.
type Criteria struct {
	// Query is the lower-cased free-text query; empty disables text matching.
	Query string
	// Filters are exact company names; empty disables company filtering.
	Filters []string
}

// NewCriteria lower-cases the query and drops blank filters.
func NewCriteria(query string, filters []string) Criteria {
	c := Criteria{Query: Lower(query)}
	for _, f := range filters {
		if f = strings.TrimSpace(f); f != "" {
			c.Filters = append(c.Filters, f)
		}
	}
	return c
}

// IsEmpty reports whether the criteria match every record.
func (c Criteria) IsEmpty() bool {
	return c.Query == "" && len(c.Filters) == 0
}

// Key returns a stable identifier for the criteria, suitable for caching.
func (c Criteria) Key() string {
	filters := append([]string(nil), c.Filters...)
	sort.Strings(filters)
	return fmt.Sprintf("q=%q;f=%q", c.Query, filters)
}

// BuildSearchQuery returns the SQL and positional arguments for c.
// Text-match arguments come first, company arguments second.
func BuildSearchQuery(c Criteria) (string, []any) {
	var b strings.Builder
	var args []any

	b.WriteString(selectSpeakers)
	b.WriteString("\nWHERE 1=1")

	if c.Query != "" {
		fmt.Fprintf(&b, "\n\tAND (%[1]s(prelegent) LIKE ?"+
			" OR %[1]s(firma_instytucja) LIKE ?"+
			" OR %[1]s(temat_prezentacji) LIKE ?"+
			" OR %[1]s(COALESCE(zaczepka, '')) LIKE ?)", lowerFunc)
		like := "%" + c.Query + "%"
		args = append(args, like, like, like, like)
	}

	if len(c.Filters) > 0 {
		b.WriteString("\n\tAND firma_instytucja IN (")
		b.WriteString(strings.TrimSuffix(strings.Repeat("?,", len(c.Filters)), ","))
		b.WriteString(")")
		for _, f := range c.Filters {
			args = append(args, f)
		}
	}

	b.WriteString("\nORDER BY prelegent")
	return b.String(), args
}

// listQuery selects every speaker ordered by name.
const listQuery = selectSpeakers + "\nORDER BY prelegent"

// Lower folds s to lower case using Unicode rules.
func Lower(s string) string {
	// A Caser keeps state, so each call gets its own.
	return cases.Lower(language.Und).String(s)
}

// unicodeLower implements lowerFunc for the SQLite driver.
func unicodeLower(args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return Lower(v), nil
	case []byte:
		return Lower(string(v)), nil
	default:
		return v, nil
	}
}
