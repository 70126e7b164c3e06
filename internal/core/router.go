package core

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ratechat/ratechat-server/internal/exchange"
	"github.com/ratechat/ratechat-server/internal/store"
)

// RateSource resolves an already-validated date to a rate table.
type RateSource interface {
	Fetch(ctx context.Context, date string) (exchange.RateTable, error)
}

// Router classifies each inbound message as chat or exchange command and
// produces the text to broadcast. Chat passes through with the sender's name
// prefixed; commands run the parse/validate/fetch/extract pipeline.
type Router struct {
	rates RateSource
	dates *exchange.DateValidator
	audit store.AuditStore
	log   *zerolog.Logger
	now   func() time.Time
}

// NewRouter wires the command pipeline's collaborators.
func NewRouter(rates RateSource, dates *exchange.DateValidator, audit store.AuditStore, logger *zerolog.Logger) *Router {
	return &Router{
		rates: rates,
		dates: dates,
		audit: audit,
		log:   logger,
		now:   time.Now,
	}
}

// Route turns one inbound message into broadcast text. ok is false when the
// message produced nothing to broadcast: a failed command pipeline is logged
// server-side and dropped, never surfaced to any client.
func (r *Router) Route(ctx context.Context, sender, text string) (outbound string, ok bool) {
	if !strings.Contains(strings.ToLower(text), "exchange") {
		return sender + ": " + text, true
	}
	return r.exchangeCommand(ctx, sender, text)
}

func (r *Router) exchangeCommand(ctx context.Context, sender, text string) (string, bool) {
	// Audited on classification, before the pipeline can fail.
	rec := store.AuditRecord{RequestedAt: r.now(), Requester: sender}
	if err := r.audit.Append(ctx, rec); err != nil {
		r.log.Error().Err(err).Str("requester", sender).Msg("append audit record")
	}

	query, err := exchange.ParseCommand(text)
	if err != nil {
		r.log.Warn().Err(err).Str("from", sender).Msg("exchange command rejected")
		return "", false
	}

	if _, err := r.dates.Validate(query.Date); err != nil {
		r.log.Warn().Err(err).Str("from", sender).Str("date", query.Date).Msg("exchange date rejected")
		return "", false
	}

	table, err := r.rates.Fetch(ctx, query.Date)
	if err != nil {
		r.log.Warn().Err(err).Str("date", query.Date).Msg("exchange rate fetch failed")
		return "", false
	}

	entry, err := exchange.Extract(table, query.Currency)
	if err != nil {
		r.log.Warn().Err(err).Str("currency", query.Currency).Str("date", query.Date).Msg("exchange rate extraction failed")
		return "", false
	}

	return exchange.FormatResult(entry), true
}
