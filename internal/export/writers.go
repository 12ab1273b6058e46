package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

// flatHeaders is the export column order, matching the FlatLead csv tags.
var flatHeaders = []string{
	"ID", "Business Name", "Source", "Category", "Rating", "Total Reviews",
	"Lead Score", "Priority", "Address", "Phone", "Email", "Website",
	"Listing URL", "Review Trend", "Trend Change", "Response Rate",
	"Business Size", "Last Negative Review", "Days Since Negative",
	"Negative Keywords", "Scraped At",
}

// WriteCSV writes the flattened leads as CSV. Errors are fatal to the
// run: a partial export must not look complete.
func WriteCSV(path string, leads []model.FlatLead) error {
	data, err := csvutil.Marshal(leads)
	if err != nil {
		return eris.Wrap(err, "export: marshal csv")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrap(err, fmt.Sprintf("export: write csv %s", path))
	}
	return nil
}

// WriteJSON writes any artifact as indented JSON.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrap(err, "export: marshal json")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrap(err, fmt.Sprintf("export: write json %s", path))
	}
	return nil
}

// WriteXLSX writes the flattened leads as a single-sheet workbook.
func WriteXLSX(path string, leads []model.FlatLead) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Leads")
	if err != nil {
		return eris.Wrap(err, "export: add xlsx sheet")
	}

	header := sheet.AddRow()
	for _, h := range flatHeaders {
		header.AddCell().SetString(h)
	}

	for _, lead := range leads {
		row := sheet.AddRow()
		for _, v := range rowValues(lead) {
			row.AddCell().SetString(v)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, fmt.Sprintf("export: save xlsx %s", path))
	}
	return nil
}

// rowValues renders one flat lead in header order.
func rowValues(f model.FlatLead) []string {
	return []string{
		f.ID,
		f.BusinessName,
		f.Source,
		f.Category,
		strconv.FormatFloat(f.Rating, 'f', 1, 64),
		strconv.Itoa(f.TotalReviews),
		strconv.Itoa(f.LeadScore),
		f.Priority,
		f.Address,
		f.Phone,
		f.Email,
		f.Website,
		f.ListingURL,
		f.ReviewTrend,
		f.TrendChange,
		f.ResponseRate,
		f.BusinessSize,
		f.LastNegative,
		f.DaysSinceNegative,
		f.NegativeKeywords,
		f.ScrapedAt,
	}
}
