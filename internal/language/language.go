package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

type entry struct {
	code2   string // ISO 639-1 (2-letter)
	code3   string // ISO 639-2 primary (3-letter)
	alt3    string // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display string
	lingua  lingua.Language
}

var languages = []entry{
	{"en", "eng", "", "English", lingua.English},
	{"es", "spa", "", "Spanish", lingua.Spanish},
	{"fr", "fra", "fre", "French", lingua.French},
	{"de", "deu", "ger", "German", lingua.German},
	{"it", "ita", "", "Italian", lingua.Italian},
	{"pt", "por", "", "Portuguese", lingua.Portuguese},
	{"ja", "jpn", "", "Japanese", lingua.Japanese},
	{"ko", "kor", "", "Korean", lingua.Korean},
	{"zh", "zho", "chi", "Chinese", lingua.Chinese},
	{"ru", "rus", "", "Russian", lingua.Russian},
	{"ar", "ara", "", "Arabic", lingua.Arabic},
	{"hi", "hin", "", "Hindi", lingua.Hindi},
	{"nl", "nld", "dut", "Dutch", lingua.Dutch},
	{"pl", "pol", "", "Polish", lingua.Polish},
	{"sv", "swe", "", "Swedish", lingua.Swedish},
	{"da", "dan", "", "Danish", lingua.Danish},
	{"no", "nor", "", "Norwegian", lingua.Bokmal},
	{"fi", "fin", "", "Finnish", lingua.Finnish},
}

// Index maps built at init time.
var (
	byCode2  map[string]*entry
	byCode3  map[string]*entry
	byLingua map[lingua.Language]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byLingua = make(map[lingua.Language]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		byLingua[e.lingua] = e
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	// Tika may answer with a region suffix such as "en-US".
	if base, _, ok := strings.Cut(code, "-"); ok {
		code = base
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	return nil
}

// ToISO2 converts any recognized language code to ISO 639-1 (2-letter).
// Returns empty string for unrecognized input.
// If the input is already a 2-letter code (even if unknown), it passes through.
func ToISO2(code string) string {
	if e := lookup(code); e != nil {
		return e.code2
	}
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) == 2 {
		return code
	}
	return ""
}

// ToISO3 converts any recognized language code to ISO 639-2 (3-letter).
// Returns "und" for unrecognized 2-letter codes, passes through 3-letter codes.
func ToISO3(code string) string {
	if e := lookup(code); e != nil {
		return e.code3
	}
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) == 3 {
		return code
	}
	return "und"
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

func linguaLanguages() []lingua.Language {
	out := make([]lingua.Language, 0, len(languages))
	for _, e := range languages {
		out = append(out, e.lingua)
	}
	return out
}
