// Package output provides utilities for formatting and displaying priced
// quotes.
package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/tour-estimate/internal/pricing"
	"github.com/iwvelando/tour-estimate/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(quote pricing.Quote) {
	fmt.Print(PrettyString(quote))
}

// PrettyString renders the quote as a human-readable table. Amounts carry
// the estimate currency symbol and thousands separators.
func PrettyString(quote pricing.Quote) string {
	p := message.NewPrinter(language.English)
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("--- Quote for %s (%s) ---\n", quote.Name, quote.Currency))

	if len(quote.HotelLines) > 0 {
		builder.WriteString("Hotel                | Rooms | Nights | Total        | Notes\n")
		builder.WriteString("_____                | _____ | ______ | _____        | _____\n")
		for _, line := range quote.HotelLines {
			note := ""
			if line.Excluded {
				note = "guide hotel, not billed"
			}
			builder.WriteString(p.Sprintf("%-20s | %5d | %6d | %12s | %s\n",
				line.Name, line.Rooms, line.Nights, format.Currency(line.Total, quote.Currency), note))
		}
	}

	if len(quote.DayLines) > 0 {
		builder.WriteString("Day | Date       | Activities | Total\n")
		builder.WriteString("___ | ____       | __________ | _____\n")
		for _, line := range quote.DayLines {
			builder.WriteString(p.Sprintf("%3d | %-10s | %10d | %s\n",
				line.DayNumber, line.Date, line.Activities, format.Currency(line.Total, quote.Currency)))
		}
	}

	if len(quote.ServiceLines) > 0 {
		builder.WriteString("Service              | Total\n")
		builder.WriteString("_______              | _____\n")
		for _, line := range quote.ServiceLines {
			builder.WriteString(p.Sprintf("%-20s | %s\n", line.Name, format.Currency(line.Total, quote.Currency)))
		}
	}

	builder.WriteString(p.Sprintf("Base cost:    %s\n", format.Currency(quote.BaseCost, quote.Currency)))
	builder.WriteString(p.Sprintf("Markup (%.2f%%): %s\n", quote.MarkupPercent, format.Currency(quote.MarkupAmount, quote.Currency)))
	builder.WriteString(p.Sprintf("Final cost:   %s\n", format.Currency(quote.FinalCost, quote.Currency)))

	return builder.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(quote pricing.Quote) {
	fmt.Print(CsvString(quote))
}

// CsvString renders the quote in comma-separated value format. Every field
// is quoted; amounts carry thousands separators but no currency symbol.
func CsvString(quote pricing.Quote) string {
	var builder strings.Builder

	builder.WriteString(`"section","name","rooms","nights","total","notes"` + "\n")

	for _, line := range quote.HotelLines {
		note := ""
		if line.Excluded {
			note = "guide hotel, not billed"
		}
		builder.WriteString(fmt.Sprintf(`"hotel","%s","%d","%d","%s","%s"`+"\n",
			line.Name, line.Rooms, line.Nights, format.NumericCurrency(line.Total), note))
	}

	for _, line := range quote.DayLines {
		builder.WriteString(fmt.Sprintf(`"day","Day %d","","","%s","%d activities"`+"\n",
			line.DayNumber, format.NumericCurrency(line.Total), line.Activities))
	}

	for _, line := range quote.ServiceLines {
		builder.WriteString(fmt.Sprintf(`"service","%s","","","%s",""`+"\n", line.Name, format.NumericCurrency(line.Total)))
	}

	builder.WriteString(fmt.Sprintf(`"total","base cost","","","%s",""`+"\n", format.NumericCurrency(quote.BaseCost)))
	builder.WriteString(fmt.Sprintf(`"total","markup","","","%s","%.2f%%"`+"\n", format.NumericCurrency(quote.MarkupAmount), quote.MarkupPercent))
	builder.WriteString(fmt.Sprintf(`"total","final cost","","","%s",""`+"\n", format.NumericCurrency(quote.FinalCost)))

	return builder.String()
}
