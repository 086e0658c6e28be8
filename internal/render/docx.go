package render

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// emptyDocx is a bare single-part package; WriteDOCX swaps in a generated
// document body before saving.
//
//go:embed template.docx
var emptyDocx []byte

const wordMLNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// WriteDOCX renders text into a DOCX at outPath. Each non-blank line becomes
// a paragraph and **...** spans render bold, so the same markdown-ish input
// feeds both WritePDF and WriteDOCX.
func WriteDOCX(text, outPath string) error {
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(emptyDocx), int64(len(emptyDocx)))
	if err != nil {
		return fmt.Errorf("open docx template: %w", err)
	}
	defer reader.Close()

	var body strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		body.WriteString("<w:p>")
		bold := false
		for i, seg := range strings.Split(line, "**") {
			if i > 0 {
				bold = !bold
			}
			if seg == "" {
				continue
			}
			if bold {
				body.WriteString(`<w:r><w:rPr><w:b/></w:rPr>`)
			} else {
				body.WriteString("<w:r>")
			}
			body.WriteString(`<w:t xml:space="preserve">`)
			body.WriteString(xmlEscaper.Replace(seg))
			body.WriteString("</w:t></w:r>")
		}
		body.WriteString("</w:p>")
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	doc := reader.Editable()
	doc.SetContent(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="` + wordMLNS + `"><w:body>` +
		body.String() + `<w:sectPr/></w:body></w:document>`)
	return doc.WriteToFile(outPath)
}
