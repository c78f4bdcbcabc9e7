package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "key" or "want"/"got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "invalid_key":
			return "state dict のキーは文字列でなければなりません"
		case "key_collision":
			return "キーの文字列表現が一意ではありません"
		case "length_mismatch":
			return "シーケンスと state dict のサイズが一致しません"
		case "missing_key":
			return "state dict にキーが不足しています"
		case "field_mismatch":
			return "state dict とレコードのフィールド名が一致しません"
		case "duplicate_key":
			return "キーが重複しています"
		case "parse_error":
			return "解析エラー"
		case "truncated":
			return "打ち切られました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "invalid_key":
			return "a state dict must only have string keys"
		case "key_collision":
			return "keys do not have a unique string representation"
		case "length_mismatch":
			return "the size of the sequence and the state dict do not match"
		case "missing_key":
			return "target keys are missing from the state dict"
		case "field_mismatch":
			return "the field names of the state dict and the record do not match"
		case "duplicate_key":
			return "duplicate key"
		case "parse_error":
			return "parse error"
		case "truncated":
			return "truncated"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
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
