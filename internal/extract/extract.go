// Package extract reads reference material uploads (PDF, DOCX, plain text)
// into the line-oriented text the syllabus segmenter and relevance
// extractor work on.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupported reports a file whose content could not be recognized as
// any supported format.
type ErrUnsupported struct {
	Name string
}

func (e *ErrUnsupported) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Name)
}

// File reads the named file and extracts its text. The format is decided
// by content sniffing first, falling back to the extension; a .pdf that
// does not start with the PDF magic is rejected rather than blind-parsed.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Bytes(filepath.Base(path), data)
}

// Bytes extracts text from an in-memory file. name is used for extension
// fallback and error messages only.
func Bytes(name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty file: %s", name)
	}

	switch {
	case isPDF(data):
		return fromPDF(data)
	case isZip(data):
		return fromDOCX(name, data)
	case isProbablyText(data):
		return normalizeLines(string(data)), nil
	}

	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".pdf" {
		return "", fmt.Errorf("%s claims to be a PDF but has no %%PDF header", name)
	}
	if ext == ".docx" {
		return "", fmt.Errorf("%s claims to be a DOCX but is not a zip container", name)
	}
	return "", &ErrUnsupported{Name: name}
}

func isPDF(b []byte) bool {
	return len(b) >= 5 && string(b[:5]) == "%PDF-"
}

func isZip(b []byte) bool {
	return len(b) >= 4 && b[0] == 'P' && b[1] == 'K' && b[2] == 3 && b[3] == 4
}

// isProbablyText accepts data whose sample is NUL-free and mostly
// printable or high-bit bytes.
func isProbablyText(b []byte) bool {
	sample := b
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	good := 0
	for _, c := range sample {
		if c == 0x00 {
			return false
		}
		if c == '\n' || c == '\r' || c == '\t' || (c >= 0x20 && c <= 0x7E) || c >= 0x80 {
			good++
		}
	}
	return float64(good)/float64(len(sample)) > 0.9
}

func fromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf text: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}
	return normalizeLines(string(b)), nil
}

// fromDOCX pulls the w:t runs out of word/document.xml, emitting one line
// per w:p paragraph so downstream line-based parsing sees the document's
// structure.
func fromDOCX(name string, data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("docx open: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("%s is a zip but not a DOCX: no word/document.xml", name)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("docx read: %w", err)
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	var out strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("docx xml: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				var text string
				if err := dec.DecodeElement(&text, &el); err != nil {
					return "", fmt.Errorf("docx xml: %w", err)
				}
				out.WriteString(text)
			}
		case xml.EndElement:
			if el.Name.Local == "p" {
				out.WriteString("\n")
			}
		}
	}

	text := normalizeLines(out.String())
	if text == "" {
		return "", fmt.Errorf("no text extracted from %s", name)
	}
	return text, nil
}

var lineSpace = regexp.MustCompile(`[ \t]+`)

// normalizeLines collapses horizontal whitespace within each line and runs
// of blank lines between them, preserving the line structure itself.
func normalizeLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var out []string
	blank := true
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(lineSpace.ReplaceAllString(line, " "))
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
