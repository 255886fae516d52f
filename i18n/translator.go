package i18n

import "sync"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "got" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var messages = map[string]map[string]string{
	"en": {
		"invalid_type":          "invalid type",
		"required":              "required property missing",
		"unknown_key":           "unknown key",
		"duplicate_key":         "duplicate key",
		"too_short":             "too short",
		"too_long":              "too long",
		"invalid_enum":          "value is not one of the accepted values",
		"invalid_literal":       "value does not match the fixed constant",
		"length_mismatch":       "wrong number of elements",
		"discriminator_missing": "type discriminator missing",
		"discriminator_unknown": "unknown type",
		"invalid_geometry":      "invalid geometry",
		"conflict":              "field given under both its name and its alias",
		"parse_error":           "parse error",
		"truncated":             "truncated",
	},
	"ja": {
		"invalid_type":          "型が不正です",
		"required":              "必須プロパティが不足しています",
		"unknown_key":           "未知のキーです",
		"duplicate_key":         "キーが重複しています",
		"too_short":             "短すぎます",
		"too_long":              "長すぎます",
		"invalid_enum":          "許可されていない値です",
		"invalid_literal":       "固定値と一致しません",
		"length_mismatch":       "要素数が不正です",
		"discriminator_missing": "type が指定されていません",
		"discriminator_unknown": "未知の type です",
		"invalid_geometry":      "ジオメトリが不正です",
		"conflict":              "フィールド名と別名が同時に指定されています",
		"parse_error":           "解析エラー",
		"truncated":             "打ち切られました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	if msg, ok := messages[t.lang][code]; ok {
		return msg
	}
	return code
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := messages[lang]; !ok {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
