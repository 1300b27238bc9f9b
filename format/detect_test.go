package format

import (
	"bytes"
	"errors"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, "PDF"},
		{ZIP, "ZIP archive"},
		{HTML, "HTML"},
		{Empty, "empty file"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"PDF header", []byte("%PDF-1.4\n"), PDF},
		{"PDF after junk", append(bytes.Repeat([]byte{' '}, 100), []byte("%PDF-1.7")...), PDF},
		{"PDF beyond window", append(bytes.Repeat([]byte{' '}, HeaderWindow), []byte("%PDF-1.7")...), Unknown},
		{"bare %PDF without dash", []byte("%PDF"), Unknown},
		{"ZIP", []byte{0x50, 0x4B, 0x03, 0x04, 0x00}, ZIP},
		{"HTML doctype", []byte("<!DOCTYPE html>\n<html>"), HTML},
		{"HTML tag", []byte("<html><head>"), HTML},
		{"HTML leading whitespace", []byte("  \n <!doctype HTML PUBLIC"), HTML},
		{"XHTML", []byte(`<?xml version="1.0"?><html xmlns="x">`), HTML},
		{"plain XML", []byte(`<?xml version="1.0"?><feed>`), Unknown},
		{"text", []byte("Hello, World!"), Unknown},
		{"empty", nil, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader(t *testing.T) {
	format, err := DetectFromReader(bytes.NewReader([]byte("%PDF-1.4\n%%EOF")))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != PDF {
		t.Errorf("DetectFromReader() = %v, want PDF", format)
	}

	format, err = DetectFromReader(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != Empty {
		t.Errorf("DetectFromReader() = %v, want empty", format)
	}
}

type failingReader struct{}

func (failingReader) ReadAt([]byte, int64) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestDetectFromReader_Error(t *testing.T) {
	if _, err := DetectFromReader(failingReader{}); err == nil {
		t.Error("expected read error")
	}
}
