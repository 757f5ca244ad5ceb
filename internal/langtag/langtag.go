// Package langtag turns page language codes into switcher labels.
//
// Page languages are free-form strings; nothing here rejects a code. Codes
// that do not parse as BCP 47 are shown as they are.
package langtag

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Label returns the language's name in that language ("de" -> "Deutsch").
// Unknown or malformed codes are returned unchanged.
func Label(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}

	name := display.Self.Name(tag)
	if name == "" {
		return code
	}
	return name
}

// Canonical returns the canonical BCP 47 form of code ("en-us" -> "en-US").
// ok is false when code is not a well-formed tag.
func Canonical(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}

	tag, err := language.Parse(code)
	if err != nil {
		return code, false
	}
	return tag.String(), true
}

// Base returns the primary language subtag ("pt-BR" -> "pt"), or code itself
// when it does not parse.
func Base(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	base, _ := tag.Base()
	return base.String()
}
