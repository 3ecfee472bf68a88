// Package gui is the translation window: an input area, two language code
// fields, a Translate button and an output area.
package gui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/valpere/perekladach/internal/gateway"
	"github.com/valpere/perekladach/internal/i18n"
)

// Localizer supplies the label texts.
type Localizer interface {
	T(id string) string
}

// Options preset the language code fields.
type Options struct {
	SourceLang string
	TargetLang string
}

// Surface owns the window fields. All of its methods run on the fyne event
// goroutine.
type Surface struct {
	gateway gateway.Gateway
	tr      Localizer
	log     zerolog.Logger

	input  *widget.Entry
	source *widget.Entry
	target *widget.Entry
	output *widget.Entry
	button *widget.Button

	content fyne.CanvasObject
}

func New(gw gateway.Gateway, tr Localizer, log zerolog.Logger, opts Options) *Surface {
	s := &Surface{
		gateway: gw,
		tr:      tr,
		log:     log.With().Str("component", "gui").Logger(),
	}
	s.setupWidgets(opts)
	return s
}

func (s *Surface) setupWidgets(opts Options) {
	s.input = widget.NewMultiLineEntry()
	s.input.Wrapping = fyne.TextWrapWord
	s.input.SetMinRowsVisible(10)

	s.source = widget.NewEntry()
	s.source.SetText(opts.SourceLang)

	s.target = widget.NewEntry()
	s.target.SetText(opts.TargetLang)

	s.button = widget.NewButton(s.tr.T(i18n.TranslateButton), s.OnTranslate)
	s.button.Importance = widget.HighImportance

	s.output = widget.NewMultiLineEntry()
	s.output.Wrapping = fyne.TextWrapWord
	s.output.SetMinRowsVisible(10)

	s.content = container.NewPadded(container.NewVBox(
		widget.NewLabel(s.tr.T(i18n.InputLabel)),
		s.input,
		widget.NewLabel(s.tr.T(i18n.SourceLabel)),
		s.source,
		widget.NewLabel(s.tr.T(i18n.TargetLabel)),
		s.target,
		s.button,
		widget.NewLabel(s.tr.T(i18n.OutputLabel)),
		s.output,
	))
}

func (s *Surface) Content() fyne.CanvasObject {
	return s.content
}

// Show opens the window on app. The caller runs the event loop.
func (s *Surface) Show(app fyne.App) fyne.Window {
	w := app.NewWindow(s.tr.T(i18n.WindowTitle))
	w.SetContent(s.content)
	w.Resize(fyne.NewSize(520, 680))
	w.Canvas().Focus(s.input)
	w.Show()
	return w
}

// OnTranslate handles the Translate button. It blocks until the gateway
// returns and then replaces the whole output with the result text.
func (s *Surface) OnTranslate() {
	text := strings.TrimSpace(s.input.Text)
	sourceLang := strings.TrimSpace(s.source.Text)
	targetLang := strings.TrimSpace(s.target.Text)

	res := s.gateway.Translate(context.Background(), gateway.NewRequest(text, sourceLang, targetLang))
	if res.OK() {
		s.log.Debug().EmbedObject(res).Msg("translation finished")
	} else {
		s.log.Warn().Err(res.Err).
			EmbedObject(res).
			Str("source_lang", sourceLang).
			Str("target_lang", targetLang).
			Msg("translation failed")
	}

	s.output.SetText(res.Display())
}

// Output returns the current output text.
func (s *Surface) Output() string {
	return s.output.Text
}
