// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// ImagePreprocessor extracts EXIF metadata from images so identity numbers
// embedded in tags such as ImageDescription or UserComment get scanned.
type ImagePreprocessor struct{}

// NewImagePreprocessor creates an image metadata preprocessor
func NewImagePreprocessor() *ImagePreprocessor {
	return &ImagePreprocessor{}
}

// Name identifies the preprocessor
func (p *ImagePreprocessor) Name() string {
	return "image"
}

// CanProcess reports whether the file is an image format carrying EXIF
func (p *ImagePreprocessor) CanProcess(filePath string) bool {
	return hasExtension(filePath, ".jpg", ".jpeg", ".tif", ".tiff")
}

// exifWalker collects every tag the decoder exposes
type exifWalker struct {
	tags map[string]string
}

func (w *exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag != nil {
		w.tags[string(name)] = strings.Trim(tag.String(), `"`)
	}
	return nil
}

// Process decodes EXIF data and renders one "Tag: value" line per field,
// sorted by tag name for stable output.
func (p *ImagePreprocessor) Process(filePath string) (*ProcessedContent, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("no EXIF data found: %w", err)
	}

	walker := &exifWalker{tags: make(map[string]string)}
	if err := x.Walk(walker); err != nil {
		return nil, fmt.Errorf("failed to walk EXIF tags: %w", err)
	}

	names := make([]string, 0, len(walker.tags))
	for name := range walker.tags {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(walker.tags[name])
		b.WriteByte('\n')
	}

	return newContent(filePath, "image", p.Name(), b.String()), nil
}
