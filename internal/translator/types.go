package translator

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidLanguage is wrapped by providers that reject a language code
// before calling the remote service.
var ErrInvalidLanguage = errors.New("invalid language code")

type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type ServiceResult struct {
	ServiceName    string            `json:"service_name"`
	TranslatedText string            `json:"translated_text"`
	Metadata       map[string]string `json:"metadata"`
	Latency        time.Duration     `json:"latency"`
	Error          string            `json:"error,omitempty"`
}

// Service is a single external translation backend.
type Service interface {
	Name() string
	Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error)
}
