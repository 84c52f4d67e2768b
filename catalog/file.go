package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Encode writes the document as JSON indented by four spaces. Names such as
// "Computing & Informatics" are written without HTML escaping.
func Encode(w io.Writer, doc *Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(doc)
}

func WriteFile(path string, doc *Document) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(file, doc); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %v: %w", path, err)
	}
	return file.Close()
}

func ReadFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := New()
	if err := json.Unmarshal(content, doc); err != nil {
		return nil, fmt.Errorf("failed to decode %v: %w", path, err)
	}
	return doc, nil
}
