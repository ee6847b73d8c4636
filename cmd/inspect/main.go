// Command inspect reads a PDF file with pdfcpu and reports its structure.
// Used during development to compare reference files produced by other
// generators against our own emitter.
package main

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <file.pdf>")
		os.Exit(2)
	}
	path := os.Args[1]

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: reading %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("File: %s\n", path)
	fmt.Printf("Version: %s\n", ctx.HeaderVersion)
	fmt.Printf("Pages: %d\n", ctx.PageCount)
	fmt.Printf("Objects: %d\n", len(ctx.XRefTable.Table))

	if err := api.ValidateContext(ctx); err != nil {
		fmt.Printf("Validation: FAILED (%v)\n", err)
		os.Exit(1)
	}
	fmt.Println("Validation: OK")
}
