package gateway

import (
	"context"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// LoggingGateway records one event per call and then delegates. The event is
// written whatever level the logger is set to, unless it is disabled.
type LoggingGateway struct {
	next Gateway
	log  zerolog.Logger
}

func NewLoggingGateway(next Gateway, log zerolog.Logger) *LoggingGateway {
	return &LoggingGateway{
		next: next,
		log:  log.With().Str("component", "gateway").Logger(),
	}
}

func (g *LoggingGateway) Translate(ctx context.Context, req Request) Result {
	g.log.Log().
		Str(zerolog.LevelFieldName, zerolog.InfoLevel.String()).
		Str("request_id", req.ID).
		Str("source_lang", req.SourceLang).
		Str("target_lang", req.TargetLang).
		Int("chars", utf8.RuneCountInString(req.Text)).
		Msg("translation requested")

	return g.next.Translate(ctx, req)
}
