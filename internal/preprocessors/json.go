// Copyright the Desktop Redactor authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// JSONPreprocessor handles JSON documents
type JSONPreprocessor struct{}

// NewJSONPreprocessor creates a JSON preprocessor
func NewJSONPreprocessor() *JSONPreprocessor {
	return &JSONPreprocessor{}
}

// Name identifies the preprocessor
func (p *JSONPreprocessor) Name() string {
	return "json"
}

// CanProcess reports whether the file is a JSON document
func (p *JSONPreprocessor) CanProcess(filePath string) bool {
	return hasExtension(filePath, ".json")
}

// Process walks the document and emits one "path: value" line per scalar
// leaf. Keeping the key path on the line preserves context words such as
// "medicare_provider" next to the value so context-aware scoring still works.
func (p *JSONPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var root any
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	var b strings.Builder
	walkJSON(&b, "", root)

	return newContent(filePath, "json", p.Name(), b.String()), nil
}

func walkJSON(b *strings.Builder, path string, node any) {
	switch v := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walkJSON(b, joinPath(path, k), v[k])
		}
	case []any:
		for i, item := range v {
			walkJSON(b, fmt.Sprintf("%s[%d]", path, i), item)
		}
	case string:
		writeLeaf(b, path, v)
	case json.Number:
		writeLeaf(b, path, v.String())
	case bool:
		writeLeaf(b, path, fmt.Sprintf("%t", v))
	case nil:
		// Nothing to scan.
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func writeLeaf(b *strings.Builder, path, value string) {
	if path == "" {
		b.WriteString(value)
	} else {
		b.WriteString(path)
		b.WriteString(": ")
		b.WriteString(value)
	}
	b.WriteByte('\n')
}
