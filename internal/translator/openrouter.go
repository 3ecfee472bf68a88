package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/valpere/perekladach/internal/postprocess"
)

var DefaultOpenRouterModels = []string{
	"google/gemini-2.0-flash-exp:free",
	"qwen/qwen2.5-72b-instruct:free",
	"mistralai/mistral-nemo:free",
	"meta-llama/llama-3.1-8b-instruct:free",
}

type OpenRouterService struct {
	apiKey  string
	baseURL string
	models  []string
	client  *http.Client
}

func NewOpenRouterService(apiKey string, baseURL string, models []string) *OpenRouterService {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if len(models) == 0 {
		models = DefaultOpenRouterModels
	}
	return &OpenRouterService{
		apiKey:  apiKey,
		baseURL: baseURL,
		models:  models,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (s *OpenRouterService) Name() string {
	return "openrouter"
}

func (s *OpenRouterService) pickModel() string {
	return s.models[rand.Intn(len(s.models))]
}

func (s *OpenRouterService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	if s.apiKey == "" {
		result.Error = "OpenRouter API key required"
		return result, fmt.Errorf("OpenRouter API key required")
	}

	model := s.pickModel()

	sourceLang := req.SourceLang
	if sourceLang == "" || sourceLang == "auto" {
		sourceLang = "the detected language"
	}

	systemPrompt := fmt.Sprintf("You are a professional translator. Translate the following text from %s to %s.\n"+
		"Only respond with the translation, nothing else. No explanations, no quotes, just the translation.",
		sourceLang, req.TargetLang)

	openrouterReq := map[string]interface{}{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": req.Text},
		},
		"max_tokens": 4096,
	}

	jsonData, err := json.Marshal(openrouterReq)
	if err != nil {
		result.Error = fmt.Sprintf("failed to marshal request: %v", err)
		return result, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("X-Title", "Perekladach")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || len(errResp) == 0 {
			result.Error = fmt.Sprintf("API returned status %d", resp.StatusCode)
		} else {
			result.Error = fmt.Sprintf("API returned status %d: %v", resp.StatusCode, errResp)
		}
		return result, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var openrouterResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
		} `json:"usage"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&openrouterResp); err != nil {
		result.Error = fmt.Sprintf("failed to decode response: %v", err)
		return result, err
	}

	if len(openrouterResp.Choices) == 0 {
		result.Error = "empty response from API"
		return result, fmt.Errorf("empty response from API")
	}

	result.TranslatedText = postprocess.Clean(openrouterResp.Choices[0].Message.Content)
	result.Metadata = map[string]string{
		"model":             model,
		"prompt_tokens":     fmt.Sprintf("%d", openrouterResp.Usage.PromptTokens),
		"completion_tokens": fmt.Sprintf("%d", openrouterResp.Usage.CompletionTokens),
	}

	return result, nil
}

func (s *OpenRouterService) Models() []string {
	return s.models
}
