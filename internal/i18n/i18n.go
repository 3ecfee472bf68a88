// Package i18n localizes the window labels.
package i18n

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

var localeFiles = []string{"active.en.toml", "active.uk.toml"}

// Message IDs used by the window.
const (
	WindowTitle     = "WindowTitle"
	InputLabel      = "InputLabel"
	SourceLabel     = "SourceLabel"
	TargetLabel     = "TargetLabel"
	TranslateButton = "TranslateButton"
	OutputLabel     = "OutputLabel"
)

// Localizer renders UI strings in one locale, falling back to English and
// then to the message ID.
type Localizer struct {
	localizer *i18n.Localizer
}

func New(locale string) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("i18n: failed to load %s: %w", file, err)
		}
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, language.English.String())

	return &Localizer{localizer: i18n.NewLocalizer(bundle, languages...)}, nil
}

func (l *Localizer) T(id string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
