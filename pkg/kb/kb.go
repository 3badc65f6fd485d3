package kb

import (
	"errors"
	"math/rand"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Entry is one precomputed FAQ item: the canonical question, its matching
// keywords, the display answer, the prosody-tuned voice script and a reference
// to the pre-rendered audio asset.
type Entry struct {
	ID               string   `json:"id"`
	Question         string   `json:"question"`
	Keywords         []string `json:"keywords"`
	Answer           string   `json:"answer"`
	VoiceScript      string   `json:"voice_script"`
	AudioFile        string   `json:"audio_file"`
	RelatedScenarios []string `json:"related_scenarios"`
	RelatedCards     []string `json:"related_cards"`
	Category         string   `json:"category"`
}

type IKnowledgeBase interface {
	AllEntries(language Language) ([]Entry, error)
	EntriesByCategory(language Language, category string) ([]Entry, error)
	RandomEntry(language Language) (Entry, error)
	Categories(language Language) ([]string, error)
}

type knowledgeBase struct {
	tables map[Language][]Entry
}

// New builds the in-memory per-language tables. Tables are never mutated after
// this point, so concurrent reads need no locking.
func New() IKnowledgeBase {
	return &knowledgeBase{
		tables: map[Language][]Entry{
			LanguageEnglish: englishEntries(),
			LanguageSpanish: spanishEntries(),
		},
	}
}

func (k *knowledgeBase) AllEntries(language Language) ([]Entry, error) {
	table, ok := k.tables[language]
	if !ok {
		return nil, ErrUnsupportedLanguage
	}
	return table, nil
}

func (k *knowledgeBase) EntriesByCategory(language Language, category string) ([]Entry, error) {
	table, ok := k.tables[language]
	if !ok {
		return nil, ErrUnsupportedLanguage
	}

	var entries []Entry
	for _, entry := range table {
		if entry.Category == category {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (k *knowledgeBase) RandomEntry(language Language) (Entry, error) {
	table, ok := k.tables[language]
	if !ok {
		return Entry{}, ErrUnsupportedLanguage
	}
	return table[rand.Intn(len(table))], nil
}

func (k *knowledgeBase) Categories(language Language) ([]string, error) {
	table, ok := k.tables[language]
	if !ok {
		return nil, ErrUnsupportedLanguage
	}

	seen := make(map[string]bool)
	var categories []string
	for _, entry := range table {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			categories = append(categories, entry.Category)
		}
	}
	return categories, nil
}

// AudioURL builds the public path of an entry's pre-rendered audio asset. The
// path matches the serving route registered by the assistant handler.
func AudioURL(language Language, entry Entry) string {
	return "/api/v1/audio/" + string(language) + "/" + entry.AudioFile
}
