package table

import "sort"

// Row exposes a lookup from field key to value.
// Keys lists every field the row holds; the search filter scans all of them,
// not only the rendered columns.
type Row interface {
	Field(key string) (interface{}, bool)
	Keys() []string
}

// Record is a map backed Row.
type Record map[string]interface{}

var _ Row = Record(nil)

func (r Record) Field(key string) (interface{}, bool) {
	v, ok := r[key]
	return v, ok
}

// Keys returns the record's keys in lexical order so that scans are deterministic.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Records converts records into Rows.
func Records(records ...Record) []Row {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = r
	}
	return rows
}

func value(row Row, key string) interface{} {
	if v, ok := row.Field(key); ok {
		return v
	}
	return nil
}
