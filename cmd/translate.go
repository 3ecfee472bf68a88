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
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/perekladach/internal/gateway"
)

var (
	sourceLang string
	targetLang string
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate one text without opening the window",
	Long: `Translate a single text with the configured service and print the
result. A failed translation prints "Error: <description>" like the window
does and still exits with status 0.

Example:
  perekladach translate -s en -t fr "Hello"`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		text := strings.TrimSpace(strings.Join(args, " "))
		src := strings.TrimSpace(sourceLang)
		dst := strings.TrimSpace(targetLang)
		if src == "" {
			src = rt.cfg.SourceLang
		}
		if dst == "" {
			dst = rt.cfg.TargetLang
		}

		res := rt.gateway.Translate(context.Background(), gateway.NewRequest(text, src, dst))
		rt.log.Debug().Str("component", "cmd").EmbedObject(res).Bool("ok", res.OK()).Msg("translation finished")

		fmt.Fprintln(cmd.OutOrStdout(), res.Display())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&sourceLang, "source", "s", "", "Source language code (config source_lang when empty)")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language code (config target_lang when empty)")
}
