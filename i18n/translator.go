package i18n

import "strings"

// Translator retrieves localized messages for issue and warning codes.
// data provides optional values to embed in the message (for example,
// "field" or "keys").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			msg = "型が不正です"
		case "required":
			msg = "必須フィールドが不足しています"
		case "unknown_key":
			msg = "未知のキーです"
		case "unknown_attribute":
			msg = "未知の属性を保持しました"
		case "invalid_enum":
			msg = "列挙値が不正です"
		case "invalid_format":
			msg = "形式が不正です"
		case "parse_error":
			msg = "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			msg = "invalid type"
		case "required":
			msg = "missing required field"
		case "unknown_key":
			msg = "unknown key"
		case "unknown_attribute":
			msg = "unknown attribute kept on record"
		case "invalid_enum":
			msg = "not a member of the enumeration"
		case "invalid_format":
			msg = "invalid format"
		case "parse_error":
			msg = "parse error"
		}
	}
	if msg == "" {
		return code
	}
	if d := data["detail"]; d != "" {
		return msg + ": " + d
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	lang = strings.ToLower(lang)
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
