package translator

import (
	"context"
	"fmt"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleService calls the Cloud Translation v2 API. It needs a service
// account credentials file unless application default credentials are set up.
type GoogleService struct {
	credentials string
}

func NewGoogleService(credentials string) *GoogleService {
	return &GoogleService{credentials: credentials}
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	targetTag, sourceTag, err := parseLanguagePair(req.SourceLang, req.TargetLang)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	opts := []option.ClientOption{}
	if s.credentials != "" {
		opts = append(opts, option.WithCredentialsFile(s.credentials))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create client: %v", err)
		return result, fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	var translateOpts *translate.Options
	if sourceTag != language.Und {
		translateOpts = &translate.Options{Source: sourceTag, Format: translate.Text}
	}

	translations, err := client.Translate(ctx, []string{req.Text}, targetTag, translateOpts)
	if err != nil {
		result.Error = fmt.Sprintf("translation failed: %v", err)
		return result, fmt.Errorf("translation failed: %w", err)
	}

	if len(translations) == 0 {
		result.Error = "no translation returned"
		return result, fmt.Errorf("no translation returned")
	}

	result.TranslatedText = translations[0].Text
	if translations[0].Source != language.Und {
		result.Metadata = map[string]string{"detected_source": translations[0].Source.String()}
	}

	return result, nil
}

// parseLanguagePair turns the raw codes into BCP 47 tags. An empty or "auto"
// source yields language.Und, which lets the API detect it.
func parseLanguagePair(source, target string) (language.Tag, language.Tag, error) {
	targetTag, err := language.Parse(target)
	if err != nil {
		return language.Und, language.Und, fmt.Errorf("%w: %q", ErrInvalidLanguage, target)
	}

	if source == "" || source == "auto" {
		return targetTag, language.Und, nil
	}

	sourceTag, err := language.Parse(source)
	if err != nil {
		return language.Und, language.Und, fmt.Errorf("%w: %q", ErrInvalidLanguage, source)
	}
	return targetTag, sourceTag, nil
}
