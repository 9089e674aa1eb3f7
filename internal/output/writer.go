// Package output writes game descriptions in the selected format.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/blindfold-chess-go/internal/config"
	"github.com/lgbarn/blindfold-chess-go/internal/errors"
)

// Description is the text produced for one game.
type Description struct {
	Game     int    `json:"game"`               // 1-based game number in the input
	Exercise int    `json:"exercise,omitempty"` // exercise number, zero if not an exercise
	Text     string `json:"text"`
}

// DescriptionWriter is the interface for writing descriptions to output.
type DescriptionWriter interface {
	// WriteDescription writes a single game's description.
	WriteDescription(d *Description) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close writes any pending output. It does not close the underlying writer.
	Close() error
}

// NewWriter returns the writer for format, one of config.FormatText or
// config.FormatJSON.
func NewWriter(w io.Writer, format string) (DescriptionWriter, error) {
	switch format {
	case config.FormatText, "":
		return NewTextWriter(w), nil
	case config.FormatJSON:
		return NewJSONWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: unknown output format %q", errors.ErrInvalidConfig, format)
	}
}

// TextWriter writes descriptions back to back, exactly as produced.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteDescription writes the description text. Empty descriptions write nothing.
func (tw *TextWriter) WriteDescription(d *Description) error {
	if d.Text == "" {
		return nil
	}
	_, err := io.WriteString(tw.w, d.Text)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter collects descriptions and writes them as one JSON array when
// it is closed.
type JSONWriter struct {
	w            io.Writer
	descriptions []*Description
	closed       bool
}

// NewJSONWriter creates a new JSON writer. Nothing is written until Close.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:            w,
		descriptions: make([]*Description, 0),
	}
}

// WriteDescription buffers a description for the array.
func (jw *JSONWriter) WriteDescription(d *Description) error {
	if jw.closed {
		return fmt.Errorf("write after close")
	}
	jw.descriptions = append(jw.descriptions, d)
	return nil
}

// Flush is a no-op: the array can only be written whole, by Close.
func (jw *JSONWriter) Flush() error {
	return nil
}

// Close writes the buffered descriptions as a JSON array, an empty one if
// there were none. Later calls do nothing.
func (jw *JSONWriter) Close() error {
	if jw.closed {
		return nil
	}
	jw.closed = true

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(jw.descriptions)
	jw.descriptions = nil
	return err
}
