// Package testutil builds small, well-formed PDF documents in memory for
// tests. Each page gets one Helvetica text run; the cross-reference table
// is written with exact byte offsets so strict readers accept it.
package testutil

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
)

// BuildPDF returns a PDF with one page per entry in pages, in order.
// Passing no pages yields a valid document with an empty page tree.
func BuildPDF(pages ...string) []byte {
	// Object layout: 1 catalog, 2 page tree, 3 font, then a page/content
	// pair for each page.
	const firstPageObj = 4
	numObjects := 3 + 2*len(pages)

	var body bytes.Buffer
	body.WriteString("%PDF-1.4\n")
	offsets := make([]int, numObjects+1)

	writeObj := func(num int, content string) {
		offsets[num] = body.Len()
		fmt.Fprintf(&body, "%d 0 obj\n%s\nendobj\n", num, content)
	}

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", firstPageObj+2*i)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, text := range pages {
		pageObj := firstPageObj + 2*i
		contentObj := pageObj + 1
		writeObj(pageObj, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentObj,
		))

		stream := fmt.Sprintf("BT /F1 24 Tf (%s) Tj ET", escapeLiteral(text))
		writeObj(contentObj, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xrefOffset := body.Len()
	fmt.Fprintf(&body, "xref\n0 %d\n", numObjects+1)
	body.WriteString("0000000000 65535 f \n")
	for num := 1; num <= numObjects; num++ {
		fmt.Fprintf(&body, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&body, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", numObjects+1, xrefOffset)

	return body.Bytes()
}

// EncodedPDF is BuildPDF followed by standard base64 encoding
func EncodedPDF(pages ...string) string {
	return base64.StdEncoding.EncodeToString(BuildPDF(pages...))
}

func escapeLiteral(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
