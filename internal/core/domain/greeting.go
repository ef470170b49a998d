package domain

import "fmt"

// Language is a greeting language code.
type Language string

const (
	LanguageKorean   Language = "ko"
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"

	DefaultLanguage = LanguageKorean
)

type greetingTemplate struct {
	named string // single %s for the name
	guest string
}

var greetingTemplates = map[Language]greetingTemplate{
	LanguageKorean:   {named: "안녕하세요, %s님!", guest: "안녕하세요, 손님님!"},
	LanguageEnglish:  {named: "Hello, %s!", guest: "Hello, Guest!"},
	LanguageJapanese: {named: "こんにちは、%sさん！", guest: "こんにちは、ゲストさん！"},
}

// ResolveLanguage maps any code to a supported language, falling back to Korean.
func ResolveLanguage(code string) Language {
	if _, ok := greetingTemplates[Language(code)]; ok {
		return Language(code)
	}
	return DefaultLanguage
}

// FormatGreeting renders the template of lang for name; an empty name selects the guest form.
func FormatGreeting(lang Language, name string) string {
	tpl, ok := greetingTemplates[lang]
	if !ok {
		tpl = greetingTemplates[DefaultLanguage]
	}
	if name == "" {
		return tpl.guest
	}
	return fmt.Sprintf(tpl.named, name)
}
