// Command demo generates a sample document exercising text flow, tables,
// rectangles and image embedding.
package main

import (
	"fmt"
	"log/slog"
	"os"

	apexpdf "github.com/propelplm/apexpdf"
)

func main() {
	out := "."
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	doc := apexpdf.New(
		apexpdf.WithLogger(slog.Default()),
		apexpdf.WithSink(apexpdf.FileSink{Dir: out}),
	)

	if err := doc.AddHeading(1, "Sales Report"); err != nil {
		fail(err)
	}
	if err := doc.AddText(
		"This report summarizes regional sales for the last quarter. "+
			"Figures are provisional and subject to reconciliation against "+
			"the finance ledger at the end of the fiscal period.",
		apexpdf.WithMaxWidth(400),
	); err != nil {
		fail(err)
	}

	cols := []apexpdf.Column{
		{Title: "Region", Key: "region"},
		{Title: "Units", Key: "units", Style: &apexpdf.CellStyle{Align: apexpdf.AlignRight}},
		{Title: "Revenue", Key: "revenue", Style: &apexpdf.CellStyle{Align: apexpdf.AlignRight}},
	}
	rows := []apexpdf.Row{
		{"region": "North", "units": "1240", "revenue": "310,000"},
		{"region": "South", "units": "980", "revenue": "245,000"},
		{"region": "West", "units": "1432", "revenue": "358,000"},
	}
	if _, err := doc.DrawTable(cols, rows, apexpdf.TableOptions{Theme: apexpdf.ThemeStriped}); err != nil {
		fail(err)
	}

	// A separator rule below the table.
	if err := doc.AddRect(apexpdf.RectElement{
		X: 30, Y: doc.CursorY(), Width: 552, Height: 1,
		Mode:      apexpdf.ModeFill,
		FillColor: "999999",
	}); err != nil {
		fail(err)
	}

	if err := doc.AddText("Generated by apexpdf",
		apexpdf.WithFontSize(9),
		apexpdf.WithColor("777777"),
	); err != nil {
		fail(err)
	}

	id, err := doc.Save("demo.pdf")
	if err != nil {
		fail(err)
	}
	fmt.Printf("wrote %s\n", id)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "demo: %v\n", err)
	os.Exit(1)
}
