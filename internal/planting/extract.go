package planting

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/i474232898/garden-planner/internal/common"
)

// TableIDFragment identifies the seed-start calendar table on the almanac page.
const TableIDFragment = "seed-start-dates-table"

// Extract parses an HTML document and returns one Record per data row of the
// first table whose id contains TableIDFragment. The first row with cells is
// the header row.
func Extract(r io.Reader) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading html: %v", common.ErrParse, err)
	}

	table := findTable(doc)
	if table == nil {
		return nil, fmt.Errorf("%w: could not find planting calendar table", common.ErrParse)
	}

	var (
		headers []string
		records []Record
	)

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() == 0 {
			return
		}

		if headers == nil {
			headers = make([]string, 0, cells.Length())
			cells.Each(func(_ int, cell *goquery.Selection) {
				headers = append(headers, strings.TrimSpace(cell.Text()))
			})
			return
		}

		var rec Record
		cells.Each(func(j int, cell *goquery.Selection) {
			if j >= len(headers) {
				return
			}
			header := headers[j]
			value := strings.TrimSpace(cell.Text())
			if header != "" && value != "" {
				rec = rec.set(header, value)
			}
		})

		if len(rec) > 0 {
			records = append(records, rec)
		}
	})

	if records == nil {
		records = []Record{}
	}
	return records, nil
}

func findTable(doc *goquery.Document) *goquery.Selection {
	var table *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		if id, ok := t.Attr("id"); ok && strings.Contains(id, TableIDFragment) {
			table = t
			return false
		}
		return true
	})
	return table
}
