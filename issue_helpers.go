package stacskema

import "github.com/reoring/stacskema/i18n"

// NewIssue builds an Issue whose message comes from the current translator.
func NewIssue(path, code, hint string, params map[string]any) Issue {
	return Issue{Path: path, Code: code, Message: i18n.T(code, stringParams(params)), Hint: hint, Params: params}
}

func stringParams(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
