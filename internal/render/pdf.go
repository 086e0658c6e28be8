// Package render turns line-oriented text with **bold** spans into a
// formatted PDF document.
package render

import (
	"bufio"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders text line by line into a PDF at outPath. Lines beginning
// with # become headings; **...** spans render bold; blank lines become
// vertical spacing. Layout is intentionally simple.
func WritePDF(text, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			pdf.Ln(5)
			continue
		}

		if strings.HasPrefix(line, "#") {
			level := 0
			for level < len(line) && line[level] == '#' {
				level++
			}
			heading := strings.TrimSpace(line[level:])
			if heading == "" {
				continue
			}
			size := 14.0
			if level >= 2 {
				size = 12.0
			}
			pdf.SetFont("Helvetica", "B", size)
			pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			continue
		}

		writeLine(pdf, line)
		pdf.Ln(6)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(outPath)
}

// writeLine writes one line, alternating regular and bold style at each
// ** delimiter.
func writeLine(pdf *gofpdf.Fpdf, line string) {
	bold := false
	for i, seg := range strings.Split(line, "**") {
		if i > 0 {
			bold = !bold
		}
		if seg == "" {
			continue
		}
		if bold {
			pdf.SetFont("Helvetica", "B", 11)
		} else {
			pdf.SetFont("Helvetica", "", 11)
		}
		pdf.Write(5, seg)
	}
	pdf.SetFont("Helvetica", "", 11)
}
