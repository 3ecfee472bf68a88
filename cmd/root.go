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
	"io"
	"os"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/valpere/perekladach/internal/config"
	"github.com/valpere/perekladach/internal/gateway"
	"github.com/valpere/perekladach/internal/gui"
	"github.com/valpere/perekladach/internal/i18n"
	"github.com/valpere/perekladach/internal/logger"
)

const appID = "com.github.valpere.perekladach"

var version = "0.1.0"

var (
	cfgFile string
	v       = config.New()
)

var rootCmd = &cobra.Command{
	Use:   "perekladach",
	Short: "Desktop text translator",
	Long: `A small desktop window that sends text to a translation service
and shows the result.

Type the text, the source and target language codes (e.g. "en", "fr")
and press Translate. Failures are shown in the output area as "Error: ...".

Supported services: googlefree (default), google, mymemory, systran,
openrouter, ollama.

Use "perekladach translate --help" to translate from the command line.`,
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		tr, err := i18n.New(rt.cfg.UILocale)
		if err != nil {
			return err
		}

		a := fyneapp.NewWithID(appID)
		surface := gui.New(rt.gateway, tr, rt.log, gui.Options{
			SourceLang: rt.cfg.SourceLang,
			TargetLang: rt.cfg.TargetLang,
		})
		surface.Show(a)

		rt.log.Info().Str("service", rt.cfg.Service).Msg("window opened")
		a.Run()
		rt.log.Debug().Msg("window closed")
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default ./perekladach.yaml)")
	flags.String("service", "", fmt.Sprintf("Translation service %v", config.Services))
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-format", "", "Log format (console, json)")

	v.BindPFlag("service", flags.Lookup("service"))
	v.BindPFlag("log_level", flags.Lookup("log-level"))
	v.BindPFlag("log_format", flags.Lookup("log-format"))
}

// modelLister is implemented by the LLM backends.
type modelLister interface {
	Models() []string
}

// runtime is everything a command needs once configuration is resolved.
type runtime struct {
	cfg     *config.Config
	log     zerolog.Logger
	gateway gateway.Gateway
}

func newRuntime(logOut io.Writer) (*runtime, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	svc, err := buildService(cfg)
	if err != nil {
		return nil, err
	}

	ev := log.Debug().Str("component", "cmd").Str("service", svc.Name())
	if m, ok := svc.(modelLister); ok {
		ev = ev.Strs("models", m.Models())
	}
	ev.Msg("translation service ready")

	return &runtime{
		cfg:     cfg,
		log:     log,
		gateway: gateway.NewLoggingGateway(gateway.NewServiceGateway(svc), log),
	}, nil
}
