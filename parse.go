package stacskema

import (
	"context"
	"errors"
	"io"

	eng "github.com/reoring/stacskema/internal/engine"
)

// ParseFrom is the primary entry point. It decodes the Source into an any
// value while enforcing duplicate-key, depth and size limits, then delegates
// validation to the Schema. Enforcement issues and schema issues are returned
// together.
func ParseFrom[T any](ctx context.Context, s Schema[T], src Source, opts ...ParseOpt) (T, error) {
	var zero T
	if s == nil {
		return zero, ErrNilSchema
	}
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	if opt.Unknown != UnknownDefault {
		ctx = WithUnknownPolicy(ctx, opt.Unknown)
	}

	v, enforced, err := decodeAnyFromSource(src, opt)
	if errors.Is(err, errDecodeHalted) && len(enforced) > 0 {
		return zero, enforced
	}
	if err != nil {
		return zero, AppendIssues(enforced, toIssues(err)...)
	}
	if len(enforced) > 0 && opt.FailFast {
		return zero, enforced
	}

	out, err := s.Parse(ctx, v)
	if err != nil {
		return zero, AppendIssues(enforced, toIssues(err)...)
	}
	if len(enforced) > 0 {
		return zero, enforced
	}
	return out, nil
}

// StreamParse validates input read from r. When MaxBytes is set it enforces
// the size cap up front.
func StreamParse[T any](ctx context.Context, s Schema[T], r io.Reader, opts ...ParseOpt) (T, error) {
	if len(opts) > 0 && opts[len(opts)-1].MaxBytes > 0 {
		lr := io.LimitReader(r, opts[len(opts)-1].MaxBytes+1)
		data, err := io.ReadAll(lr)
		if err != nil {
			var zero T
			return zero, singleIssue(CodeParseError, err.Error())
		}
		if int64(len(data)) > opts[len(opts)-1].MaxBytes {
			var zero T
			return zero, singleIssue(CodeTruncated, "max bytes exceeded")
		}
		return ParseFrom[T](ctx, s, JSONBytes(data), opts...)
	}
	return ParseFrom[T](ctx, s, JSONReader(r), opts...)
}

var errDecodeHalted = errors.New("decode halted by enforcement")

// decodeAnyFromSource returns the decoded value together with the
// enforcement issues that must fail the parse (Error severity).
func decodeAnyFromSource(src Source, opt ParseOpt) (any, Issues, error) {
	if opt.MaxBytes > 0 && src.size() > opt.MaxBytes {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded"), errDecodeHalted
	}
	var failing Issues
	eopt := eng.DecodeOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		FailFast:    opt.FailFast,
		IssueSink: func(si eng.SimpleIssue) {
			it := NewIssue(si.Path, si.Code, si.Message, nil)
			if si.Code == CodeDuplicateKey && opt.Strictness.OnDuplicateKey == Warn {
				if opt.OnWarning != nil {
					opt.OnWarning(it)
				}
				return
			}
			failing = AppendIssues(failing, it)
		},
	}
	v, err := eng.DecodeAny(src.tokens(), eopt)
	var ie eng.IssueError
	if errors.As(err, &ie) {
		// already delivered through the sink
		return nil, failing, errDecodeHalted
	}
	return v, failing, err
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Warn:
		return eng.DupWarn
	case Error:
		return eng.DupError
	default:
		return eng.DupIgnore
	}
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err})
}

func singleIssue(code, msg string) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg})
}
