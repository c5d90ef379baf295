// internal/aliases/aliases.go
//
// Static table of dictionary bundle codes → display names.
//
// Codes are the lowercased directory names of the LibreOffice dictionaries
// corpus (or their base, e.g. "pt" for "pt_br"). Several codes share one
// display name; regional variants collapse onto the canonical language.
//
// The table is built at package init and never mutated afterwards, so it is
// safe for concurrent readers without locking.

package aliases

import (
	"slices"
	"strings"
)

// table maps lowercase codes to display names. Lookups are case-sensitive.
var table = map[string]string{
	"af":          "Afrikaans",
	"pa":          "Punjabi",
	"an":          "Aragonese",
	"br":          "Breton",
	"fa-ir":       "Persian",
	"lo":          "Laotian",
	"eo":          "esperanto",
	"ca":          "Catalan",
	"ca-valencia": "Valencian",
	"en":          "English",
	"gug":         "Guarani",
	"is":          "Icelandic",
	"fa":          "Persian",
	"mn":          "Mongolian",
	"ku":          "Kurdish",
	"lt":          "Lithuanian",
	"lv":          "Latvian",
	"md":          "Mapudüngun",
	"mr":          "Marathi",
	"tr":          "Turkish",
	"as":          "Assamese",
	"sq":          "Albanian",
	"bo":          "Tibetan",
	"nl":          "Dutch",
	"ne":          "Nepali",
	"kn":          "Kannada",
	"gu":          "Bengali",
	"bn":          "Nepali",
	"da":          "Danish",
	"hr":          "Croatian",
	"hi":          "Hindi",
	"bg":          "Bulgarian",
	"no":          "Norwegian",
	"nn":          "Norwegian",
	"nb":          "Norwegian",
	"si":          "Sinhala",
	"ru":          "Russian",
	"oc":          "Occitan",
	"es":          "Spanish",
	"in":          "Indonesian",
	"it":          "Italian",
	"fr":          "French",
	"gd":          "Scottish Gaelic",
	"hu":          "Hungarian",
	"sw":          "Swahili",
	"be":          "Belarusian",
	"be-official": "Belarusian",
	"pl":          "Polish",
	"sk":          "Slovak",
	"ar":          "Arabic",
	"sa":          "Sanskrit",
	"de":          "German",
	"pt":          "Portuguese",
	"ro":          "Romanian",
	"bs":          "Bosnian",
	"gl":          "Galician",
	"he":          "Hebrew",
	"cs":          "Czech",
	"el":          "Greek",
	"id":          "Indonesian",
	"ko":          "Korean",
	"et":          "Estonian",
	"or":          "Oriya",
	"sl":          "Slovenian",
	"uk":          "Ukrainian",
	"ta":          "Tamil",
	"kmr":         "Kurdish",
	"sv":          "Swedish",
	"th":          "Thai",
	"vi":          "Vietnamese",
	"sr":          "Serbian",
	"sr-latn":     "Serbian",
	"ckb":         "Kurdish",
	"te":          "Telugu",
}

// names is the sorted, de-duplicated set of display names.
var names = buildNames()

// Lookup returns the display name for code. The caller lowercases code.
func Lookup(code string) (string, bool) {
	name, ok := table[code]
	return name, ok
}

// Names returns every distinct display name, sorted case-insensitively.
// The returned slice is a copy.
func Names() []string {
	return slices.Clone(names)
}

// Len reports the number of codes in the table.
func Len() int { return len(table) }

func buildNames() []string {
	seen := make(map[string]struct{}, len(table))
	out := make([]string, 0, len(table))
	for _, n := range table {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	slices.SortFunc(out, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return out
}
