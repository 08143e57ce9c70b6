// Package speakers provides read-only access to the conference speaker
// table and the rules that turn stored rows into API records.
package speakers

import (
	"bytes"
	"database/sql"
	"encoding/json"
)

// Table is the name of the speaker table.
const Table = "prelegenci"

// Record is a row of the speaker table as stored.
type Record struct {
	ID            int64
	Name          string         // prelegent
	Company       sql.NullString // firma_instytucja
	Topic         string         // temat_prezentacji
	Challenges    string         // problemy_wyzwania
	Opportunities sql.NullString // mozliwosci_it_sprzedaz
	Hook          sql.NullString // zaczepka
}

// Speaker is the shaped record returned to API callers.
type Speaker struct {
	ID            int64    `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Company       string   `json:"company" yaml:"company"`
	Topic         string   `json:"topic" yaml:"topic"`
	Challenges    string   `json:"challenges" yaml:"challenges"`
	Opportunities []string `json:"opportunities" yaml:"opportunities"`
	Hook          string   `json:"zaczepka" yaml:"zaczepka"`
	Description   string   `json:"description" yaml:"description"`
}

// Stats holds row counts for the diagnostics endpoint.
type Stats struct {
	Total    int `json:"total"`
	WithHook int `json:"with_nonempty_zaczepka"`
}

// HookSample is a short view of a speaker that has a hook.
type HookSample struct {
	ID        int64   `json:"id"`
	Name      string  `json:"prelegent"`
	Company   *string `json:"firma"`
	HookShort string  `json:"zaczepka"`
}

// HookInfo describes the hook column of a raw row.
type HookInfo struct {
	HasHook bool   `json:"has_zaczepka"`
	Length  int    `json:"zaczepka_length"`
	Preview string `json:"zaczepka_preview"`
}

// RawRow is an untyped row with its columns kept in table order.
type RawRow struct {
	Columns []string
	Values  []any
}

// Get returns the value of the named column.
func (r RawRow) Get(column string) (any, bool) {
	for i, c := range r.Columns {
		if c == column {
			return r.Values[i], true
		}
	}
	return nil, false
}

// MarshalJSON encodes the row as an object whose keys follow column order.
func (r RawRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
