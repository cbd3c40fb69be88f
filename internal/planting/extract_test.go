package planting

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/i474232898/garden-planner/internal/common"
)

const calendarPage = `<html><body>
<table id="other-table"><tr><th>Ignored</th></tr><tr><td>x</td></tr></table>
<table id="zip-seed-start-dates-table-1">
  <thead>
    <tr><th>Vegetable</th><th> Start Indoors </th><th>Transplant</th></tr>
  </thead>
  <tbody>
    <tr><td>Tomato</td><td>March</td><td>May</td></tr>
    <tr><td>Basil</td></tr>
    <tr><td>Pea</td><td>   </td><td>April</td><td>extra</td></tr>
    <tr></tr>
    <tr><td> </td><td>&nbsp;</td></tr>
  </tbody>
</table>
<table id="seed-start-dates-table-2"><tr><th>Second</th></tr><tr><td>never</td></tr></table>
</body></html>`

func TestExtractAlignsRowsToHeader(t *testing.T) {
	records, err := Extract(strings.NewReader(calendarPage))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []map[string]string{
		{"Vegetable": "Tomato", "Start Indoors": "March", "Transplant": "May"},
		{"Vegetable": "Basil"},
		{"Vegetable": "Pea", "Transplant": "April"},
	}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d: %v", len(want), len(records), records)
	}
	for i, rec := range records {
		if got := rec.Map(); !reflect.DeepEqual(got, want[i]) {
			t.Errorf("record %d: expected %v, got %v", i, want[i], got)
		}
		for _, c := range rec {
			if c.Header == "" || c.Value == "" {
				t.Errorf("record %d has empty key or value: %+v", i, c)
			}
		}
	}
}

func TestExtractMissingTable(t *testing.T) {
	_, err := Extract(strings.NewReader(`<html><table id="prices"><tr><td>1</td></tr></table></html>`))
	if !errors.Is(err, common.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if !strings.Contains(err.Error(), "table") {
		t.Fatalf("expected message to mention the table, got %q", err.Error())
	}
}

func TestExtractHeaderOnly(t *testing.T) {
	records, err := Extract(strings.NewReader(`<table id="seed-start-dates-table"><tr><th>Crop</th></tr></table>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", records)
	}
}

func TestExtractEmptyHeaderColumnSkipped(t *testing.T) {
	page := `<table id="seed-start-dates-table">
<tr><td></td><td>Crop</td></tr>
<tr><td>row-label</td><td>Kale</td></tr>
</table>`
	records, err := Extract(strings.NewReader(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || !reflect.DeepEqual(records[0].Map(), map[string]string{"Crop": "Kale"}) {
		t.Fatalf("unexpected records: %v", records)
	}
}

func TestRecordMarshalKeepsColumnOrder(t *testing.T) {
	rec := Record{{"Crop", "Tomato"}, {"Start Seeds Indoors", "Mar 1"}, {"A \"quoted\"", "x"}}
	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"Crop":"Tomato","Start Seeds Indoors":"Mar 1","A \"quoted\"":"x"}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}
}
