// Package i18n holds the localized dictionaries for the marketing/landing
// site. Storefront pages themselves render merchant-authored content and
// are not translated.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed messages/*.json
var messagesFS embed.FS

type Locale string

const (
	French  Locale = "fr"
	English Locale = "en"
	Arabic  Locale = "ar"

	DefaultLocale = French
)

func Locales() []Locale {
	return []Locale{French, English, Arabic}
}

func Valid(s string) bool {
	switch Locale(s) {
	case French, English, Arabic:
		return true
	}
	return false
}

// Dir returns the text direction for the locale.
func Dir(l Locale) string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

type Dictionary map[string]string

func (d Dictionary) T(key string) string {
	if v, ok := d[key]; ok {
		return v
	}
	return key
}

var (
	loadOnce sync.Once
	dicts    map[Locale]Dictionary
)

func load() {
	dicts = make(map[Locale]Dictionary, len(Locales()))
	for _, l := range Locales() {
		raw, err := messagesFS.ReadFile(fmt.Sprintf("messages/%s.json", l))
		if err != nil {
			panic(fmt.Sprintf("i18n: missing dictionary for %s: %v", l, err))
		}
		var d Dictionary
		if err := json.Unmarshal(raw, &d); err != nil {
			panic(fmt.Sprintf("i18n: bad dictionary for %s: %v", l, err))
		}
		dicts[l] = d
	}
}

// Dict returns the dictionary for the locale, falling back to the default
// locale for unknown values.
func Dict(l Locale) Dictionary {
	loadOnce.Do(load)
	if d, ok := dicts[l]; ok {
		return d
	}
	return dicts[DefaultLocale]
}
