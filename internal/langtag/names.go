package langtag

import "strings"

// englishNames maps lower-cased English language names to base codes.
var englishNames = map[string]string{
	"english": "en", "spanish": "es", "french": "fr", "german": "de",
	"italian": "it", "portuguese": "pt", "dutch": "nl", "russian": "ru",
	"japanese": "ja", "chinese": "zh", "korean": "ko", "arabic": "ar",
	"hindi": "hi", "polish": "pl", "swedish": "sv", "norwegian": "no",
	"danish": "da", "finnish": "fi", "turkish": "tr", "greek": "el",
	"hebrew": "he", "czech": "cs", "hungarian": "hu", "romanian": "ro",
	"thai": "th", "vietnamese": "vi", "indonesian": "id", "malay": "ms",
	"ukrainian": "uk", "catalan": "ca", "croatian": "hr", "slovak": "sk",
	"bulgarian": "bg", "lithuanian": "lt", "latvian": "lv", "estonian": "et",
	"slovenian": "sl", "serbian": "sr", "persian": "fa", "farsi": "fa",
	"bengali": "bn", "tamil": "ta", "welsh": "cy", "irish": "ga",
	"scottish gaelic": "gd", "basque": "eu", "galician": "gl", "icelandic": "is",
	"albanian": "sq", "armenian": "hy", "georgian": "ka", "esperanto": "eo",
	"tagalog": "tl", "filipino": "tl", "mandarin": "zh", "swahili": "sw",
}

// FromName resolves an English language name ("German", "scottish gaelic")
// to its code.
func FromName(name string) (string, bool) {
	code, ok := englishNames[strings.ToLower(strings.Join(strings.Fields(name), " "))]
	return code, ok
}

// Lookup accepts a language tag or an English language name and returns the
// canonical tag.
func Lookup(input string) (string, bool) {
	if canonical, ok := Canonical(input); ok {
		return canonical, true
	}
	return FromName(input)
}
