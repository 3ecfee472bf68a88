// Package gateway turns a translation backend into a fail-soft call whose
// result is always displayable text.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/valpere/perekladach/internal/translator"
)

// ErrorPrefix starts the display text of every failed translation.
const ErrorPrefix = "Error: "

// Request is built from the window fields for a single translation. ID only
// correlates log lines.
type Request struct {
	ID         string
	Text       string
	SourceLang string
	TargetLang string
}

// NewRequest returns a Request with a fresh ID. Codes are kept as given.
func NewRequest(text, sourceLang, targetLang string) Request {
	return Request{
		ID:         uuid.NewString(),
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	}
}

// Result holds either a translation or the failure that prevented it.
// Service, Latency and Metadata describe the backend call when one was made.
type Result struct {
	Text     string
	Err      error
	Service  string
	Latency  time.Duration
	Metadata map[string]string
}

func (r Result) OK() bool {
	return r.Err == nil
}

// MarshalZerologObject adds the backend call details to a log event.
func (r Result) MarshalZerologObject(e *zerolog.Event) {
	if r.Service != "" {
		e.Str("service", r.Service)
	}
	e.Dur("latency", r.Latency)
	if len(r.Metadata) > 0 {
		meta := zerolog.Dict()
		for k, v := range r.Metadata {
			meta.Str(k, v)
		}
		e.Dict("metadata", meta)
	}
}

// Display renders the result for the output field: the translation as
// returned, or ErrorPrefix followed by the failure description.
func (r Result) Display() string {
	if r.Err != nil {
		return ErrorPrefix + r.Err.Error()
	}
	return r.Text
}

type Gateway interface {
	Translate(ctx context.Context, req Request) Result
}

// TranslateText performs one call and returns its display text.
func TranslateText(ctx context.Context, gw Gateway, text, sourceLang, targetLang string) string {
	return gw.Translate(ctx, NewRequest(text, sourceLang, targetLang)).Display()
}

// ServiceGateway adapts a translator.Service. Failures, including panics in
// the backend, come back inside the Result.
type ServiceGateway struct {
	service translator.Service
}

func NewServiceGateway(svc translator.Service) *ServiceGateway {
	return &ServiceGateway{service: svc}
}

func (g *ServiceGateway) Translate(ctx context.Context, req Request) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Err: fmt.Errorf("%s: panic: %v", g.service.Name(), r)}
		}
	}()

	out, err := g.service.Translate(ctx, translator.TranslateRequest{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if out == nil {
		if err == nil {
			err = fmt.Errorf("%s: no result returned", g.service.Name())
		}
		return Result{Err: err, Service: g.service.Name()}
	}

	res = Result{
		Service:  out.ServiceName,
		Latency:  out.Latency,
		Metadata: out.Metadata,
	}
	switch {
	case err != nil:
		res.Err = err
	case out.Error != "":
		res.Err = errors.New(out.Error)
	default:
		res.Text = out.TranslatedText
	}
	return res
}
