package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DecodeOptions controls runtime enforcement behavior.
type DecodeOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// IssueSink receives every enforcement issue (duplicates, depth, bytes).
	IssueSink func(SimpleIssue)
	// FailFast stops at the first issue encountered, returning an IssueError.
	FailFast bool
}

// ErrTrailingData reports content after the first complete value.
var ErrTrailingData = errors.New("engine: unexpected data after top-level value")

// DecodeAny builds an any tree (map[string]any, []any, string, json.Number,
// bool, nil) from src. Duplicate keys keep the last value.
func DecodeAny(src TokenSource, opt DecodeOptions) (any, error) {
	d := &decoder{src: src, opt: opt}
	tok, err := d.next("/")
	if err != nil {
		return nil, err
	}
	v, err := d.value(tok, "", 0)
	if err != nil {
		return nil, err
	}
	if _, err := src.NextToken(); err == nil {
		return nil, ErrTrailingData
	} else if !errors.Is(err, io.EOF) {
		return nil, err
	}
	return v, nil
}

type decoder struct {
	src TokenSource
	opt DecodeOptions
}

func (d *decoder) report(si SimpleIssue) {
	if d.opt.IssueSink != nil {
		d.opt.IssueSink(si)
	}
}

func (d *decoder) next(path string) (Token, error) {
	tok, err := d.src.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) && path != "/" {
			return Token{}, io.ErrUnexpectedEOF
		}
		return Token{}, err
	}
	if d.opt.MaxBytes > 0 {
		if off := d.src.Location(); off >= 0 && off > d.opt.MaxBytes {
			si := SimpleIssue{Code: "truncated", Path: normalizeIssuePath(path), Message: "max bytes exceeded"}
			d.report(si)
			return Token{}, IssueError{si}
		}
	}
	return tok, nil
}

func (d *decoder) value(tok Token, path string, depth int) (any, error) {
	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		if d.opt.MaxDepth > 0 && depth+1 > d.opt.MaxDepth {
			si := SimpleIssue{Code: "parse_error", Path: normalizeIssuePath(path), Message: "max depth exceeded"}
			d.report(si)
			return nil, IssueError{si}
		}
		if tok.Kind == KindBeginObject {
			return d.object(path, depth+1)
		}
		return d.array(path, depth+1)
	case KindString:
		return tok.String, nil
	case KindNumber:
		return json.Number(tok.Number), nil
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, fmt.Errorf("engine: unexpected token at %s", normalizeIssuePath(path))
	}
}

func (d *decoder) object(path string, depth int) (any, error) {
	m := make(map[string]any)
	for {
		tok, err := d.next(path)
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndObject {
			return m, nil
		}
		if tok.Kind != KindKey && tok.Kind != KindString {
			return nil, fmt.Errorf("engine: expected object key at %s", normalizeIssuePath(path))
		}
		key := tok.String
		kpath := joinJSONPointer(path, key)
		if _, dup := m[key]; dup && d.opt.OnDuplicate != DupIgnore {
			si := SimpleIssue{Code: "duplicate_key", Path: kpath, Message: "key '" + key + "' duplicated"}
			d.report(si)
			if d.opt.FailFast && d.opt.OnDuplicate == DupError {
				return nil, IssueError{si}
			}
		}
		vt, err := d.next(kpath)
		if err != nil {
			return nil, err
		}
		v, err := d.value(vt, kpath, depth)
		if err != nil {
			return nil, err
		}
		m[key] = v
	}
}

func (d *decoder) array(path string, depth int) (any, error) {
	arr := []any{}
	for i := 0; ; i++ {
		ipath := joinJSONPointer(path, strconv.Itoa(i))
		tok, err := d.next(ipath)
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := d.value(tok, ipath, depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func normalizeIssuePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinJSONPointer(base, token string) string {
	return base + "/" + jsonPointerEscaper.Replace(token)
}
