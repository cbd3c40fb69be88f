package garden

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/i474232898/garden-planner/internal/common"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"complete", `{"crop":"Carrot","planting_date":"2024-04-01"}`, false},
		{"extra fields", `{"id":1,"crop":"Carrot","planting_date":"2024-04-01","status":"planned"}`, false},
		{"empty values still present", `{"crop":"","planting_date":null}`, false},
		{"missing planting_date", `{"crop":"Carrot"}`, true},
		{"missing crop", `{"planting_date":"2024-04-01"}`, true},
		{"array", `[{"crop":"Carrot","planting_date":"2024-04-01"}]`, true},
		{"null", `null`, true},
		{"string", `"Carrot"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CropEntry(tt.body).Validate()
			if tt.wantErr {
				if !errors.Is(err, common.ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCropEntryRoundTripsVerbatim(t *testing.T) {
	in := `[{"crop":"Pea","planting_date":"2024-04-10","planting_info":{"direct_sow":"Apr 1"},"id":17}]`

	var entries []CropEntry
	if err := json.Unmarshal([]byte(in), &entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != in {
		t.Fatalf("expected %s, got %s", in, out)
	}
	if got := entries[0].Text(FieldCrop); got != "Pea" {
		t.Fatalf("expected crop Pea, got %q", got)
	}
}
