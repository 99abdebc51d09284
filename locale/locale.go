// Package locale carries the two languages explanations are written in.
package locale

import (
	"fmt"
	"strings"
)

// Locale selects a language.
type Locale uint8

const (
	EN Locale = iota
	NO
)

// All lists the supported locales.
var All = [...]Locale{EN, NO}

func (l Locale) String() string {
	switch l {
	case EN:
		return "en"
	case NO:
		return "no"
	default:
		panic("locale: unknown locale")
	}
}

// Parse accepts "en", "no" and the common aliases "nb" and "nn".
func Parse(text string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "en", "eng", "english":
		return EN, nil
	case "no", "nb", "nn", "nor", "norsk":
		return NO, nil
	}
	return EN, fmt.Errorf("unknown locale %q", text)
}

// Text is one message in both languages.
type Text struct {
	EN string `json:"en"`
	NO string `json:"no"`
}

// T builds a Text.
func T(en, no string) Text { return Text{EN: en, NO: no} }

// In returns the message in l.
func (t Text) In(l Locale) string {
	if l == NO {
		return t.NO
	}
	return t.EN
}

// IsZero reports whether both languages are empty.
func (t Text) IsZero() bool { return t.EN == "" && t.NO == "" }

// Join concatenates texts language by language.
func Join(sep string, parts ...Text) Text {
	en := make([]string, 0, len(parts))
	no := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.IsZero() {
			continue
		}
		en = append(en, p.EN)
		no = append(no, p.NO)
	}
	return Text{EN: strings.Join(en, sep), NO: strings.Join(no, sep)}
}

// Sprintf formats both languages with the same arguments.
func Sprintf(t Text, args ...any) Text {
	return Text{EN: fmt.Sprintf(t.EN, args...), NO: fmt.Sprintf(t.NO, args...)}
}
