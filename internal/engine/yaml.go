package engine

import (
	"errors"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Alias expansion may emit at most tokensPerByte tokens per input byte (plus
// minTokenBudget), so nested or cyclic anchors cannot outgrow the document.
const (
	tokensPerByte  = 8
	minTokenBudget = 1024
)

// ErrYAMLExpansion reports alias expansion beyond the token budget.
var ErrYAMLExpansion = errors.New("engine: yaml alias expansion exceeds document size")

type yamlSource struct {
	toks   []Token
	pos    int
	err    error
	budget int
}

// NewYAMLBytes flattens the first YAML document in b into a TokenSource.
// Scalars map onto JSON kinds by their resolved tag (!!null, !!bool, !!int,
// !!float, everything else a string).
func NewYAMLBytes(b []byte) TokenSource {
	var doc yaml.Node
	s := &yamlSource{budget: tokensPerByte*len(b) + minTokenBudget}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		s.err = err
		return s
	}
	if doc.Kind == 0 {
		return s
	}
	if s.err = s.emit(&doc); s.err != nil {
		s.toks = nil
	}
	return s
}

func (s *yamlSource) NextToken() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}
	if s.pos >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *yamlSource) Location() int64 { return -1 }

func (s *yamlSource) push(t Token) error {
	if len(s.toks) >= s.budget {
		return ErrYAMLExpansion
	}
	t.Offset = -1
	s.toks = append(s.toks, t)
	return nil
}

func (s *yamlSource) emit(n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			if err := s.emit(c); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		if err := s.push(Token{Kind: KindBeginObject}); err != nil {
			return err
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			if err := s.push(Token{Kind: KindKey, String: n.Content[i].Value}); err != nil {
				return err
			}
			if err := s.emit(n.Content[i+1]); err != nil {
				return err
			}
		}
		return s.push(Token{Kind: KindEndObject})
	case yaml.SequenceNode:
		if err := s.push(Token{Kind: KindBeginArray}); err != nil {
			return err
		}
		for _, c := range n.Content {
			if err := s.emit(c); err != nil {
				return err
			}
		}
		return s.push(Token{Kind: KindEndArray})
	case yaml.AliasNode:
		if n.Alias == nil {
			return errors.New("engine: yaml alias without anchor")
		}
		return s.emit(n.Alias)
	case yaml.ScalarNode:
		return s.scalar(n)
	}
	return nil
}

func (s *yamlSource) scalar(n *yaml.Node) error {
	switch n.ShortTag() {
	case "!!null":
		return s.push(Token{Kind: KindNull})
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return err
		}
		return s.push(Token{Kind: KindBool, Bool: b})
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return err
		}
		return s.push(Token{Kind: KindNumber, Number: strconv.FormatInt(i, 10)})
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return err
		}
		return s.push(Token{Kind: KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64)})
	default:
		return s.push(Token{Kind: KindString, String: n.Value})
	}
}
