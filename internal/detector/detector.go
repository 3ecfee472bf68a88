// Package detector guesses the source language of a text for translation
// backends that cannot auto-detect it themselves.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// DefaultLanguages is the candidate set used by New. Restricting lingua to a
// handful of languages keeps the loaded models small.
var DefaultLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Polish,
	lingua.Ukrainian,
	lingua.Russian,
}

type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	return NewWithLanguages(DefaultLanguages...)
}

func NewWithLanguages(languages ...lingua.Language) *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO returns the lower-case ISO 639-1 code of the detected language,
// the form translation APIs expect.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
