package translator

import (
	"context"
	"fmt"
	"time"

	"github.com/bregydoc/gtranslate"
	"golang.org/x/text/language"
)

// GoogleFreeService uses the public translate.google.com web endpoint. It
// needs no credentials, which makes it the default backend.
type GoogleFreeService struct {
	translateFunc func(text string, params gtranslate.TranslationParams) (string, error)
}

func NewGoogleFreeService() *GoogleFreeService {
	return &GoogleFreeService{translateFunc: gtranslate.TranslateWithParams}
}

func (s *GoogleFreeService) Name() string {
	return "googlefree"
}

func (s *GoogleFreeService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	// gtranslate has no context support; at least honour a context that is
	// already done.
	if err := ctx.Err(); err != nil {
		result.Error = err.Error()
		return result, err
	}

	// gtranslate swaps an unknown code for "auto" or "en" instead of failing,
	// so codes are checked here first.
	_, sourceTag, err := parseLanguagePair(req.SourceLang, req.TargetLang)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	sourceLang := req.SourceLang
	if sourceTag == language.Und {
		sourceLang = "auto"
	}

	translated, err := s.translateFunc(req.Text, gtranslate.TranslationParams{
		From:  sourceLang,
		To:    req.TargetLang,
		Tries: 1,
	})
	if err != nil {
		result.Error = fmt.Sprintf("translation failed: %v", err)
		return result, fmt.Errorf("translation failed: %w", err)
	}

	result.TranslatedText = translated
	return result, nil
}
