package engine

import (
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

type jsonSource struct {
	dec *j.Decoder
}

// NewJSONReader wraps an io.Reader into a TokenSource backed by go-json.
// Object keys are reported as KindString.
func NewJSONReader(r io.Reader) TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec}
}

func (s *jsonSource) NextToken() (Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return Token{}, err
	}
	off := s.dec.InputOffset()
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return Token{Kind: KindBeginObject, Offset: off}, nil
		case '}':
			return Token{Kind: KindEndObject, Offset: off}, nil
		case '[':
			return Token{Kind: KindBeginArray, Offset: off}, nil
		case ']':
			return Token{Kind: KindEndArray, Offset: off}, nil
		}
	case string:
		return Token{Kind: KindString, String: v, Offset: off}, nil
	case bool:
		return Token{Kind: KindBool, Bool: v, Offset: off}, nil
	case j.Number:
		return Token{Kind: KindNumber, Number: string(v), Offset: off}, nil
	case float64:
		return Token{Kind: KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: off}, nil
	case nil:
		return Token{Kind: KindNull, Offset: off}, nil
	}
	return Token{Kind: KindNull, Offset: off}, nil
}

func (s *jsonSource) Location() int64 { return s.dec.InputOffset() }
