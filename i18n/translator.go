package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "property" or "kind").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "malformed_path":
			return "パスの形式が不正です"
		case "unknown_property":
			return "未知のプロパティです"
		case "not_an_object":
			return "オブジェクトではありません"
		case "not_indexable":
			return "インデックス参照できません"
		case "index_out_of_bounds":
			return "インデックスが範囲外です"
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "invalid_enum":
			return "許可されていない値です"
		case "union_no_match":
			return "どのバリアントにも一致しません"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "malformed_path":
			return "malformed path"
		case "unknown_property":
			return "unknown property"
		case "not_an_object":
			return "not an object"
		case "not_indexable":
			return "not indexable"
		case "index_out_of_bounds":
			return "index out of bounds"
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "unknown_key":
			return "unknown key"
		case "invalid_enum":
			return "value not allowed"
		case "union_no_match":
			return "no union variant matched"
		case "parse_error":
			return "parse error"
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
