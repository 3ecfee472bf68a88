package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const myMemoryBaseURL = "https://api.mymemory.translated.net"

// SourceDetector guesses the ISO 639-1 code of a text.
type SourceDetector interface {
	DetectISO(text string) (string, bool)
}

type MyMemoryService struct {
	email    string
	baseURL  string
	detector SourceDetector
	client   *http.Client
}

// NewMyMemoryService creates the MyMemory backend. MyMemory needs an explicit
// source language; when the request has none, det is asked for one. det may
// be nil, in which case English is assumed.
func NewMyMemoryService(email string, det SourceDetector) *MyMemoryService {
	return &MyMemoryService{
		email:    email,
		baseURL:  myMemoryBaseURL,
		detector: det,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *MyMemoryService) Name() string {
	return "mymemory"
}

func (s *MyMemoryService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	sourceLang := s.sourceLang(req)

	query := url.Values{}
	query.Set("q", req.Text)
	query.Set("langpair", fmt.Sprintf("%s|%s", sourceLang, req.TargetLang))
	if s.email != "" {
		query.Set("de", s.email)
	}

	apiURL := fmt.Sprintf("%s/get?%s", s.baseURL, query.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result, err
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, err
	}
	defer resp.Body.Close()

	var mymemResp struct {
		ResponseData struct {
			TranslatedText string  `json:"translatedText"`
			Match          float64 `json:"match"`
		} `json:"responseData"`
		ResponseStatus  int    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&mymemResp); err != nil {
		result.Error = fmt.Sprintf("failed to decode response: %v", err)
		return result, err
	}

	if mymemResp.ResponseStatus != http.StatusOK {
		result.Error = fmt.Sprintf("API error: %s (%d)", mymemResp.ResponseDetails, mymemResp.ResponseStatus)
		return result, fmt.Errorf("API error: %s", mymemResp.ResponseDetails)
	}

	result.TranslatedText = mymemResp.ResponseData.TranslatedText
	result.Metadata = map[string]string{
		"source_lang": sourceLang,
		"match":       fmt.Sprintf("%.2f", mymemResp.ResponseData.Match),
	}

	return result, nil
}

func (s *MyMemoryService) sourceLang(req TranslateRequest) string {
	if req.SourceLang != "" && req.SourceLang != "auto" {
		return req.SourceLang
	}
	if s.detector != nil {
		if code, ok := s.detector.DetectISO(req.Text); ok {
			return code
		}
	}
	return "en"
}
