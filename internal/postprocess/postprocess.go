// Package postprocess tidies the raw answer of an LLM translation backend so
// that only the translated text reaches the window.
package postprocess

import (
	"regexp"
	"strings"
)

// Clean strips reasoning blocks, a leading "Here is the translation:" style
// preamble and a pair of wrapping quotes, in that order.
func Clean(text string) string {
	text = stripReasoning(text)
	text = stripPreamble(text)
	text = stripQuotes(text)
	return strings.TrimSpace(text)
}

// RE2 has no backreferences, so every tag pair is spelled out.
var reasoningRe = regexp.MustCompile(
	`(?is)<think>.*?</think>|<thinking>.*?</thinking>|<reasoning>.*?</reasoning>`,
)

// An opening tag with no closing one means the model was cut off; drop the rest.
var unclosedReasoningRe = regexp.MustCompile(`(?is)(?:<think>|<thinking>|<reasoning>).*$`)

func stripReasoning(text string) string {
	text = reasoningRe.ReplaceAllString(text, "")
	text = unclosedReasoningRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Preambles must start the text and end with a colon.
var preambleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:certainly|sure|of course)[,.!]?\s+`),
	regexp.MustCompile(`(?i)^here(?:'s| is)(?: the| your)? (?:translated )?(?:translation|text)\s*:`),
	regexp.MustCompile(`(?i)^(?:the )?(?:translation|translated text)\s*:`),
}

func stripPreamble(text string) string {
	rest := text
	if loc := preambleRes[0].FindStringIndex(rest); loc != nil {
		rest = rest[loc[1]:]
	}
	for _, re := range preambleRes[1:] {
		if loc := re.FindStringIndex(rest); loc != nil {
			return strings.TrimSpace(rest[loc[1]:])
		}
	}
	return text
}

var quotePairs = map[rune]rune{
	'"':  '"',
	'\'': '\'',
	'«':  '»',
	'“':  '”',
	'‘':  '’',
	'„':  '“',
}

func stripQuotes(text string) string {
	runes := []rune(text)
	if len(runes) < 2 {
		return text
	}
	if closing, ok := quotePairs[runes[0]]; ok && runes[len(runes)-1] == closing {
		return strings.TrimSpace(string(runes[1 : len(runes)-1]))
	}
	return text
}
