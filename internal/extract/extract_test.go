package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestBytesPlainText(t *testing.T) {
	in := []byte("UNIT I: Basics\t of   compilers\r\n\r\n\r\nTokens and lexemes\n")
	got, err := Bytes("syllabus.txt", in)
	if err != nil {
		t.Fatal(err)
	}
	want := "UNIT I: Basics of compilers\n\nTokens and lexemes"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBytesEmpty(t *testing.T) {
	if _, err := Bytes("syllabus.txt", nil); err == nil {
		t.Error("empty input must fail")
	}
}

func TestBytesRejectsFakePDF(t *testing.T) {
	_, err := Bytes("syllabus.pdf", []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05})
	if err == nil || !strings.Contains(err.Error(), "PDF") {
		t.Errorf("binary data named .pdf must be rejected with a PDF hint, got %v", err)
	}
}

func TestBytesUnknownBinary(t *testing.T) {
	_, err := Bytes("mystery.bin", []byte{0x00, 0xff, 0x00, 0xff})
	var unsupported *ErrUnsupported
	if !errors.As(err, &unsupported) {
		t.Errorf("got %v, want ErrUnsupported", err)
	}
}

func docxBytes(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestBytesDOCX(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>UNIT I: Lexical </w:t></w:r><w:r><w:t>Analysis</w:t></w:r></w:p>
    <w:p><w:r><w:t>Tokens and automata</w:t></w:r></w:p>
  </w:body>
</w:document>`

	got, err := Bytes("syllabus.docx", docxBytes(t, doc))
	if err != nil {
		t.Fatal(err)
	}
	want := "UNIT I: Lexical Analysis\nTokens and automata"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBytesZipWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("other.txt")
	w.Write([]byte("not a docx"))
	zw.Close()

	if _, err := Bytes("syllabus.docx", buf.Bytes()); err == nil {
		t.Error("zip without word/document.xml must fail")
	}
}
