package timefmt

import (
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/th"
	"github.com/go-playground/locales/zh"
	"golang.org/x/text/language"
)

// supported locale tags, aligned index-for-index with localeKeys
var (
	localeTags = []language.Tag{
		language.English,
		language.BritishEnglish,
		language.French,
		language.German,
		language.Spanish,
		language.Japanese,
		language.Chinese,
		language.Thai,
	}
	localeKeys    = []string{"en", "en-GB", "fr", "de", "es", "ja", "zh", "th"}
	localeMatcher = language.NewMatcher(localeTags)

	translators = map[string]locales.Translator{
		"en":    en.New(),
		"en-GB": en_GB.New(),
		"fr":    fr.New(),
		"de":    de.New(),
		"es":    es.New(),
		"ja":    ja.New(),
		"zh":    zh.New(),
		"th":    th.New(),
	}
)

// TranslatorFor resolves a BCP 47 tag to the nearest supported CLDR
// translator. Unknown or empty tags fall back to English
func TranslatorFor(lang string) locales.Translator {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return translators["en"]
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return translators["en"]
	}
	_, idx, _ := localeMatcher.Match(tag)
	return translators[localeKeys[idx]]
}
