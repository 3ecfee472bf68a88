/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/valpere/perekladach/internal/config"
	"github.com/valpere/perekladach/internal/detector"
	"github.com/valpere/perekladach/internal/translator"
)

// buildService constructs the configured translation service.
func buildService(cfg *config.Config) (translator.Service, error) {
	switch cfg.Service {
	case "googlefree":
		return translator.NewGoogleFreeService(), nil
	case "google":
		return translator.NewGoogleService(cfg.Google.Credentials), nil
	case "mymemory":
		return translator.NewMyMemoryService(cfg.MyMemory.Email, detector.New()), nil
	case "systran":
		return translator.NewSystranService(cfg.Systran.APIKey), nil
	case "openrouter":
		return translator.NewOpenRouterService(cfg.OpenRouter.APIKey, cfg.OpenRouter.BaseURL, cfg.OpenRouter.Models), nil
	case "ollama":
		return translator.NewOllamaTranslator(cfg.Ollama.URL, cfg.Ollama.Models), nil
	default:
		return nil, fmt.Errorf("unknown service: %s", cfg.Service)
	}
}
