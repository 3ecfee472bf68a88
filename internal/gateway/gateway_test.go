package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/valpere/perekladach/internal/translator"
)

// stubService answers every call with the configured text or error.
type stubService struct {
	text  string
	err   error
	panic bool
	calls []translator.TranslateRequest
}

func (s *stubService) Name() string { return "stub" }

func (s *stubService) Translate(_ context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	s.calls = append(s.calls, req)
	if s.panic {
		panic("backend exploded")
	}
	result := &translator.ServiceResult{ServiceName: s.Name()}
	if s.err != nil {
		result.Error = s.err.Error()
		return result, s.err
	}
	result.TranslatedText = s.text
	return result, nil
}

type invalidLanguageError struct {
	code string
}

func (e invalidLanguageError) Error() string {
	return "InvalidLanguageCode: " + e.code
}

func TestServiceGateway_Translate_PassThrough(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "plain", text: "Bonjour"},
		{name: "surrounding whitespace kept", text: "  Bonjour \n"},
		{name: "empty translation", text: ""},
		{name: "unicode", text: "Привіт, світе"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := NewServiceGateway(&stubService{text: tt.text})

			res := gw.Translate(context.Background(), NewRequest("Hello", "en", "fr"))
			if !res.OK() {
				t.Fatalf("unexpected error: %v", res.Err)
			}
			if res.Display() != tt.text {
				t.Errorf("Display() = %q, want %q", res.Display(), tt.text)
			}
		})
	}
}

func TestServiceGateway_Translate_ForwardsRequestUnchanged(t *testing.T) {
	svc := &stubService{text: "ok"}
	gw := NewServiceGateway(svc)

	gw.Translate(context.Background(), NewRequest(" Hello ", "EN", "xx-Nope"))

	if len(svc.calls) != 1 {
		t.Fatalf("expected 1 backend call, got %d", len(svc.calls))
	}
	want := translator.TranslateRequest{Text: " Hello ", SourceLang: "EN", TargetLang: "xx-Nope"}
	if svc.calls[0] != want {
		t.Errorf("backend got %+v, want %+v", svc.calls[0], want)
	}
}

func TestServiceGateway_Translate_Failure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "invalid language code",
			err:  invalidLanguageError{code: "xx"},
			want: "Error: InvalidLanguageCode: xx",
		},
		{
			name: "wrapped network error",
			err:  fmt.Errorf("request failed: %w", errors.New("dial tcp: connection refused")),
			want: "Error: request failed: dial tcp: connection refused",
		},
		{
			name: "rate limit",
			err:  errors.New("API returned status 429"),
			want: "Error: API returned status 429",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := NewServiceGateway(&stubService{err: tt.err})

			res := gw.Translate(context.Background(), NewRequest("Hello", "en", "xx"))
			if res.OK() {
				t.Fatal("expected failure result")
			}
			if !errors.Is(res.Err, tt.err) {
				t.Errorf("expected backend error to be kept, got %v", res.Err)
			}
			if got := res.Display(); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServiceGateway_Translate_ResultErrorWithoutError(t *testing.T) {
	gw := NewServiceGateway(serviceFunc(func(req translator.TranslateRequest) (*translator.ServiceResult, error) {
		return &translator.ServiceResult{Error: "quota exceeded"}, nil
	}))

	got := gw.Translate(context.Background(), NewRequest("Hello", "en", "fr")).Display()
	if got != "Error: quota exceeded" {
		t.Errorf("Display() = %q", got)
	}
}

func TestServiceGateway_Translate_NilResult(t *testing.T) {
	gw := NewServiceGateway(serviceFunc(func(req translator.TranslateRequest) (*translator.ServiceResult, error) {
		return nil, nil
	}))

	got := gw.Translate(context.Background(), NewRequest("Hello", "en", "fr")).Display()
	if !strings.HasPrefix(got, ErrorPrefix) {
		t.Errorf("expected error display, got %q", got)
	}
}

func TestServiceGateway_Translate_RecoversPanic(t *testing.T) {
	gw := NewServiceGateway(&stubService{panic: true})

	got := gw.Translate(context.Background(), NewRequest("Hello", "en", "fr")).Display()
	if !strings.HasPrefix(got, ErrorPrefix) {
		t.Errorf("expected error display, got %q", got)
	}
	if !strings.Contains(got, "backend exploded") {
		t.Errorf("expected panic value in display, got %q", got)
	}
}

func TestServiceGateway_Translate_EmptyInput(t *testing.T) {
	svc := &stubService{err: errors.New("empty text")}
	gw := NewServiceGateway(svc)

	got := TranslateText(context.Background(), gw, "", "", "")
	if got != "Error: empty text" {
		t.Errorf("TranslateText = %q", got)
	}
	if len(svc.calls) != 1 {
		t.Errorf("expected the call to be attempted, got %d calls", len(svc.calls))
	}
}

func TestServiceGateway_Translate_NotCached(t *testing.T) {
	svc := &stubService{text: "Bonjour"}
	gw := NewServiceGateway(svc)

	first := TranslateText(context.Background(), gw, "Hello", "en", "fr")
	svc.text = "Salut"
	second := TranslateText(context.Background(), gw, "Hello", "en", "fr")

	if first != "Bonjour" || second != "Salut" {
		t.Errorf("got %q then %q, want each backend answer", first, second)
	}
	if len(svc.calls) != 2 {
		t.Errorf("expected 2 backend calls, got %d", len(svc.calls))
	}
}

func TestServiceGateway_Translate_GoogleFreeInvalidCode(t *testing.T) {
	gw := NewServiceGateway(translator.NewGoogleFreeService())

	got := TranslateText(context.Background(), gw, "Hello", "en", "xx")
	if !strings.HasPrefix(got, ErrorPrefix) {
		t.Fatalf("expected error display, got %q", got)
	}
	if !strings.Contains(got, "xx") {
		t.Errorf("expected the rejected code in %q", got)
	}
}

func TestServiceGateway_Translate_CallDetails(t *testing.T) {
	tests := []struct {
		name    string
		out     *translator.ServiceResult
		err     error
		wantErr bool
	}{
		{
			name: "success",
			out: &translator.ServiceResult{
				ServiceName:    "ollama",
				TranslatedText: "Bonjour",
				Latency:        120 * time.Millisecond,
				Metadata:       map[string]string{"model": "gemma3:4b"},
			},
		},
		{
			name: "failure",
			out: &translator.ServiceResult{
				ServiceName: "ollama",
				Latency:     120 * time.Millisecond,
				Metadata:    map[string]string{"model": "gemma3:4b"},
				Error:       "API returned status 500",
			},
			err:     errors.New("API returned status 500"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := NewServiceGateway(serviceFunc(func(translator.TranslateRequest) (*translator.ServiceResult, error) {
				return tt.out, tt.err
			}))

			res := gw.Translate(context.Background(), NewRequest("Hello", "en", "fr"))
			if res.OK() == tt.wantErr {
				t.Fatalf("OK() = %v, wantErr %v", res.OK(), tt.wantErr)
			}
			if res.Service != "ollama" || res.Latency != 120*time.Millisecond {
				t.Errorf("unexpected call details %+v", res)
			}
			if res.Metadata["model"] != "gemma3:4b" {
				t.Errorf("metadata = %v", res.Metadata)
			}
		})
	}
}

func TestResult_MarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	res := Result{
		Text:     "Bonjour",
		Service:  "openrouter",
		Latency:  2 * time.Second,
		Metadata: map[string]string{"model": "x/y"},
	}

	zerolog.New(&buf).Log().EmbedObject(res).Msg("done")

	entries := logLines(&buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 log event, got %d", len(entries))
	}
	entry := entries[0]
	if entry["service"] != "openrouter" {
		t.Errorf("service = %v", entry["service"])
	}
	if entry["latency"] != float64(2000) {
		t.Errorf("latency = %v, want 2000", entry["latency"])
	}
	meta, ok := entry["metadata"].(map[string]interface{})
	if !ok || meta["model"] != "x/y" {
		t.Errorf("metadata = %v", entry["metadata"])
	}
}

func TestNewRequest(t *testing.T) {
	a := NewRequest("Hello", "en", "fr")
	b := NewRequest("Hello", "en", "fr")

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", a.ID, b.ID)
	}
	if a.Text != "Hello" || a.SourceLang != "en" || a.TargetLang != "fr" {
		t.Errorf("unexpected request %+v", a)
	}
}

type serviceFunc func(req translator.TranslateRequest) (*translator.ServiceResult, error)

func (f serviceFunc) Name() string { return "func" }

func (f serviceFunc) Translate(_ context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	return f(req)
}
