package garden

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/i474232898/garden-planner/internal/common"
)

// Required CropEntry fields.
const (
	FieldCrop         = "crop"
	FieldPlantingDate = "planting_date"
)

// CropEntry is one user-submitted crop record. The submitted JSON object is
// kept verbatim so extra fields and their order round-trip unchanged.
type CropEntry json.RawMessage

func (e CropEntry) MarshalJSON() ([]byte, error) {
	if len(e) == 0 {
		return []byte("null"), nil
	}
	return e, nil
}

func (e *CropEntry) UnmarshalJSON(b []byte) error {
	*e = append((*e)[:0], b...)
	return nil
}

// Fields decodes the entry's top-level object.
func (e CropEntry) Fields() (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(e, &fields); err != nil {
		return nil, fmt.Errorf("%w: crop entry must be a JSON object", common.ErrValidation)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: crop entry must be a JSON object", common.ErrValidation)
	}
	return fields, nil
}

// Text returns a text field, empty when absent or not a string.
func (e CropEntry) Text(name string) string {
	fields, err := e.Fields()
	if err != nil {
		return ""
	}
	var s string
	if raw, ok := fields[name]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

// Validate checks that the required fields are present. Presence is enough;
// values are passed through unchecked.
func (e CropEntry) Validate() error {
	fields, err := e.Fields()
	if err != nil {
		return err
	}
	for _, name := range []string{FieldCrop, FieldPlantingDate} {
		if _, ok := fields[name]; !ok {
			return fmt.Errorf("%w: invalid crop data: missing %q", common.ErrValidation, name)
		}
	}
	return nil
}

// Compact returns the entry with insignificant whitespace removed.
func (e CropEntry) Compact() (CropEntry, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, e); err != nil {
		return nil, fmt.Errorf("%w: crop entry is not valid JSON", common.ErrValidation)
	}
	return CropEntry(buf.Bytes()), nil
}

// Store is the persisted GardenLog. Implementations validate entries on Append
// and return the full log after the write.
type Store interface {
	List(ctx context.Context) ([]CropEntry, error)
	Append(ctx context.Context, entry CropEntry) ([]CropEntry, error)
}
