// Package transcript loads raw transcription inputs for the
// extraction engine. Transcriptions arrive either as plain text files
// or as JSONL batches with per-item metadata; pasted rich text may
// carry HTML markup, which is stripped before extraction.
package transcript

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Transcript is one raw input: the text blob plus optional metadata.
type Transcript struct {
	Title      string    `json:"title"`
	RecordedAt time.Time `json:"recorded_at"`
	Location   string    `json:"location"`
	Text       string    `json:"text"`
}

// LoadFromFile reads a plain-text transcript. The file name (without
// extension) becomes the title.
func LoadFromFile(path string) (Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Transcript{}, fmt.Errorf("read file %s: %w", path, err)
	}

	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	return Transcript{
		Title: name,
		Text:  Clean(string(data)),
	}, nil
}

// LoadFromJSONL loads transcripts from a JSONL file with proper error
// handling. Malformed lines are skipped with a warning rather than
// failing the whole batch.
func LoadFromJSONL(path string) ([]Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var items []Transcript
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var item Transcript
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		item.Text = Clean(item.Text)
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid transcripts found in %s", path)
	}

	return items, nil
}

// Clean normalizes a raw transcription: strips HTML markup when
// present and normalizes line endings. Paragraph boundaries (line
// breaks) are preserved for the segmenter.
func Clean(text string) string {
	if strings.Contains(text, "<") && strings.Contains(text, ">") {
		text = stripHTML(text)
	}
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// stripHTML extracts the text content of markup, inserting line breaks
// at block-element boundaries so paragraphs survive stripping.
func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to the raw string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && isBlock(n.Data) {
			buf.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
		if n.Type == html.ElementNode && isBlock(n.Data) {
			buf.WriteString("\n")
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "br", "li", "h1", "h2", "h3", "h4", "section", "article":
		return true
	}
	return false
}
