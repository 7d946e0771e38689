// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// maxPDFPages caps extraction to keep scan time bounded on very large files.
const maxPDFPages = 50

// PDFPreprocessor extracts text from PDF documents
type PDFPreprocessor struct {
	pdfConfig *model.Configuration
}

// NewPDFPreprocessor creates a PDF preprocessor
func NewPDFPreprocessor() *PDFPreprocessor {
	return &PDFPreprocessor{pdfConfig: model.NewDefaultConfiguration()}
}

// Name identifies the preprocessor
func (p *PDFPreprocessor) Name() string {
	return "pdf"
}

// CanProcess reports whether the file is a PDF document
func (p *PDFPreprocessor) CanProcess(filePath string) bool {
	return hasExtension(filePath, ".pdf")
}

// Process validates the document structure with pdfcpu, then extracts text
// page by page.
func (p *PDFPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	if err := api.ValidateFile(filePath, p.pdfConfig); err != nil {
		return nil, fmt.Errorf("invalid PDF document: %w", err)
	}

	ctx, err := api.ReadContextFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	pageCount := ctx.PageCount

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	pagesToScan := r.NumPage()
	if pagesToScan > maxPDFPages {
		pagesToScan = maxPDFPages
	}

	var buf bytes.Buffer
	for i := 1; i <= pagesToScan; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Keep whatever the other pages yield.
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(text)
	}

	content := newContent(filePath, "pdf", p.Name(), normalizePDFText(buf.String()))
	content.PageCount = pageCount
	return content, nil
}

// normalizePDFText trims empty lines and collapses runs of spaces within
// lines while keeping line breaks, so values and their labels stay adjacent.
func normalizePDFText(text string) string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
