package planting

import (
	"bytes"
	"encoding/json"
)

// Cell is one header/value pair of a calendar row.
type Cell struct {
	Header string
	Value  string
}

// Record is one row of the planting calendar keyed by column header. Cells keep
// the column order of the source table, and only non-empty pairs are present.
type Record []Cell

// Get returns the value for header.
func (r Record) Get(header string) (string, bool) {
	for _, c := range r {
		if c.Header == header {
			return c.Value, true
		}
	}
	return "", false
}

// Map returns the record as a plain map.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r))
	for _, c := range r {
		m[c.Header] = c.Value
	}
	return m
}

// set stores value under header, replacing an earlier cell with the same header.
func (r Record) set(header, value string) Record {
	for i := range r {
		if r[i].Header == header {
			r[i].Value = value
			return r
		}
	}
	return append(r, Cell{Header: header, Value: value})
}

// MarshalJSON encodes the record as a JSON object in column order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c.Header)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
