package stacskema

import (
	"bytes"
	"io"

	eng "github.com/reoring/stacskema/internal/engine"
)

// Source is an input document consumed by ParseFrom.
type Source interface {
	tokens() eng.TokenSource
	// size is the document length in bytes when known up front, else -1.
	size() int64
	Format() string
}

type tokenSource struct {
	inner  func() eng.TokenSource
	length int64
	format string
}

func (s tokenSource) tokens() eng.TokenSource { return s.inner() }
func (s tokenSource) size() int64             { return s.length }
func (s tokenSource) Format() string          { return s.format }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source {
	return tokenSource{
		inner:  func() eng.TokenSource { return eng.NewJSONReader(r) },
		length: -1,
		format: "json",
	}
}

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return JSONReader(bytes.NewReader(b)) }

// YAMLBytes wraps a single YAML document as a Source. YAML scalars are mapped
// onto JSON kinds by their resolved tag. The document is only parsed once it
// passed the MaxBytes check.
func YAMLBytes(b []byte) Source {
	return tokenSource{
		inner:  func() eng.TokenSource { return eng.NewYAMLBytes(b) },
		length: int64(len(b)),
		format: "yaml",
	}
}
