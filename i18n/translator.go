package i18n

import (
	"strings"
	"sync/atomic"

	"golang.org/x/text/language"
)

// Translator retrieves localized messages for rule names.
// data provides the rule parameters to embed in the message (for example,
// "min" or "pattern").
type Translator interface {
	Message(rule string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Unknown rules
// fall back to the rule name itself.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(rule string, data map[string]string) string {
	dict := catalog[t.lang]
	tmpl, ok := dict[rule]
	if !ok {
		tmpl, ok = catalog["en"][rule]
	}
	if !ok {
		return rule
	}
	return render(tmpl, data)
}

// render substitutes {key} placeholders. Missing keys are left as written.
func render(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var supported = []language.Tag{language.English, language.Japanese}

var matcher = language.NewMatcher(supported)

// Normalize maps a BCP 47 tag such as "ja-JP" onto a supported catalog
// language. Anything unrecognised becomes "en".
func Normalize(lang string) string {
	if lang == "" {
		return "en"
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "en"
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "en"
	}
	base, _ := supported[idx].Base()
	return base.String()
}

type holder struct{ tr Translator }

var current atomic.Value

func init() { current.Store(holder{dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	current.Store(holder{dictTranslator{lang: Normalize(lang)}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(holder{tr})
}

// For returns the built-in dictionary for lang, or the current Translator
// when lang is empty.
func For(lang string) Translator {
	if lang == "" {
		return current.Load().(holder).tr
	}
	return dictTranslator{lang: Normalize(lang)}
}

// T fetches a message for the given rule using the current Translator.
func T(rule string, data map[string]string) string { return For("").Message(rule, data) }
