package entities

import "strings"

// Source language is fixed: users speak to the skill in English and ask for
// translations into one of the supported target languages.
const (
	SourceLanguageName = "english"
	SourceLanguageCode = "en"
)

// Language describes one supported target language: its full lowercase
// name as spoken by the user, the short code understood by the translation
// service, the synthesis voice used for spoken playback, and a static list
// of facts for the fact intent.
type Language struct {
	Name  string
	Code  string
	Voice string
	Facts []string
}

// Catalog is the immutable supported-language table, loaded once at process
// start. Lookups are keyed by normalized (lowercase, trimmed) language name.
type Catalog struct {
	languages map[string]Language
	names     []string
}

// NewCatalog builds a catalog from the given languages.
func NewCatalog(languages []Language) *Catalog {
	c := &Catalog{
		languages: make(map[string]Language, len(languages)),
		names:     make([]string, 0, len(languages)),
	}
	for _, lang := range languages {
		name := strings.ToLower(strings.TrimSpace(lang.Name))
		lang.Name = name
		c.languages[name] = lang
		c.names = append(c.names, name)
	}
	return c
}

// Lookup returns the language for the given name. The name is normalized
// before lookup so "French" and " french " resolve identically.
func (c *Catalog) Lookup(name string) (Language, bool) {
	lang, ok := c.languages[strings.ToLower(strings.TrimSpace(name))]
	return lang, ok
}

// Contains reports whether name is a supported language name or the source
// language name. The validator accepts both in free text.
func (c *Catalog) Contains(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == SourceLanguageName {
		return true
	}
	_, ok := c.languages[name]
	return ok
}

// Names returns the supported target language names in registration order.
// The returned slice is a copy; mutating it does not affect the catalog.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// DefaultCatalog returns the built-in supported-language set.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Language{
		{
			Name:  "french",
			Code:  "fr",
			Voice: "Mathieu",
			Facts: []string{
				"French is an official language in 29 countries.",
				"About 45 percent of English words have a French origin.",
				"French was the official language of England for about 300 years.",
			},
		},
		{
			Name:  "spanish",
			Code:  "es",
			Voice: "Enrique",
			Facts: []string{
				"Spanish is the second most spoken native language in the world.",
				"Spanish has two names: castellano and espanol.",
				"The first modern novel, Don Quixote, was written in Spanish.",
			},
		},
		{
			Name:  "italian",
			Code:  "it",
			Voice: "Giorgio",
			Facts: []string{
				"Italian became an official national language only in the 19th century.",
				"Italian is the closest major language to Latin.",
				"The longest Italian word has 30 letters.",
			},
		},
		{
			Name:  "german",
			Code:  "de",
			Voice: "Hans",
			Facts: []string{
				"German is the most widely spoken native language in the European Union.",
				"German nouns are always capitalized.",
				"German and English share about 60 percent of their vocabulary.",
			},
		},
		{
			Name:  "portuguese",
			Code:  "pt",
			Voice: "Cristiano",
			Facts: []string{
				"Portuguese is the official language of nine countries.",
				"Only about 5 percent of Portuguese speakers live in Portugal.",
				"Portuguese is the fastest growing European language after English.",
			},
		},
		{
			Name:  "japanese",
			Code:  "ja",
			Voice: "Takumi",
			Facts: []string{
				"Japanese uses three different writing systems.",
				"Japanese has no grammatical gender and no plural forms.",
				"Around 125 million people speak Japanese.",
			},
		},
		{
			Name:  "russian",
			Code:  "ru",
			Voice: "Maxim",
			Facts: []string{
				"Russian is the most widespread language in Eurasia.",
				"The Russian alphabet has 33 letters.",
				"Russian was the first language spoken in outer space.",
			},
		},
		{
			Name:  "dutch",
			Code:  "nl",
			Voice: "Ruben",
			Facts: []string{
				"Dutch is the closest major relative of English.",
				"Many English nautical terms are borrowed from Dutch.",
				"Dutch and Flemish are variants of the same language.",
			},
		},
		{
			Name:  "swedish",
			Code:  "sv",
			Voice: "Astrid",
			Facts: []string{
				"Swedish is the most spoken of the North Germanic languages.",
				"Swedish only became the official language of Sweden in 2009.",
				"The Swedish word 'smorgasbord' made it into English unchanged.",
			},
		},
		{
			Name:  "polish",
			Code:  "pl",
			Voice: "Jacek",
			Facts: []string{
				"Polish is the second most widely spoken Slavic language.",
				"The Polish alphabet has 32 letters, nine of them unique.",
				"Polish is considered one of the hardest languages to pronounce.",
			},
		},
	})
}
