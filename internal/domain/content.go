package domain

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// FilePart is an uploaded file prepared for inline transport: the raw bytes
// base64-encoded and paired with the declared media type.
type FilePart struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64 standard encoding
}

// EncodeFile reads r to the end and wraps the bytes as an inline FilePart.
// The whole payload is held in memory; encoding completes before any request
// carrying the part is sent.
func EncodeFile(r io.Reader, mimeType string) (*FilePart, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read file content: %w", err)
	}
	return &FilePart{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(raw),
	}, nil
}

// Bytes decodes the inline payload back to the original file bytes.
func (f *FilePart) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(f.Data)
}

// Content is the source material a generation operation works over: either
// raw text or an uploaded file, never both. A Content lives for a single
// request; nothing is persisted.
type Content struct {
	Text string
	File *FilePart
}

// NewTextContent wraps raw text as generation source material.
func NewTextContent(text string) Content {
	return Content{Text: text}
}

// NewFileContent wraps an encoded file as generation source material.
func NewFileContent(file *FilePart) Content {
	return Content{File: file}
}

// IsEmpty reports whether no usable source material was supplied.
func (c Content) IsEmpty() bool {
	return strings.TrimSpace(c.Text) == "" && c.File == nil
}
