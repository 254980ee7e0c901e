// Package assistant is the conversational core: it runs the NLP pipeline
// over a raw query and synthesizes the response text.
package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/campusvoice/campus-assistant-go/internal/ctxutil"
	"github.com/campusvoice/campus-assistant-go/internal/knowledge"
	"github.com/campusvoice/campus-assistant-go/internal/logger"
	"github.com/campusvoice/campus-assistant-go/internal/metrics"
	"github.com/campusvoice/campus-assistant-go/internal/nlp"
)

// helpCommands are exact (trimmed, lowercased) inputs that short-circuit to
// the help message before classification.
var helpCommands = map[string]bool{
	"help":            true,
	"commands":        true,
	"what can you do": true,
}

// Reply carries the rendered response together with the classification that
// produced it.
type Reply struct {
	Response string
	Result   nlp.QueryResult
}

// Assistant answers campus queries. It never fails on malformed input; the
// only error it returns is a knowledge store failure.
type Assistant struct {
	processor *nlp.Processor
	synth     *Synthesizer
	metrics   *metrics.Metrics
	log       *logger.Logger
}

// New builds an assistant over store using the real clock. m may be nil.
func New(store knowledge.Store, m *metrics.Metrics, log *logger.Logger) *Assistant {
	return NewWithClock(store, m, log, time.Now)
}

// NewWithClock injects the clock used for today/tomorrow resolution.
func NewWithClock(store knowledge.Store, m *metrics.Metrics, log *logger.Logger, now func() time.Time) *Assistant {
	return &Assistant{
		processor: nlp.NewProcessorWithClock(now),
		synth:     NewSynthesizerWithClock(store, now),
		metrics:   m,
		log:       log.WithModule("assistant"),
	}
}

// Answer processes a raw query end to end.
func (a *Assistant) Answer(ctx context.Context, raw string) (Reply, error) {
	start := time.Now()

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		a.metrics.RecordQuery(string(nlp.IntentUnknown), "empty", time.Since(start).Seconds())
		return Reply{
			Response: emptyInputResponse,
			Result:   nlp.QueryResult{OriginalText: raw, Intent: nlp.IntentUnknown},
		}, nil
	}

	result := a.processor.Process(raw)
	log := a.log.WithFields(map[string]any{
		"intent":     string(result.Intent),
		"confidence": result.Confidence,
	})
	if id := ctxutil.GetRequestID(ctx); id != "" {
		log = log.WithRequestID(id)
	}

	if helpCommands[strings.ToLower(trimmed)] {
		a.metrics.RecordQuery(string(result.Intent), "help", time.Since(start).Seconds())
		return Reply{Response: helpResponse, Result: result}, nil
	}

	var response string
	var err error
	if strings.Contains(result.NormalizedText, "emergency") {
		response, err = a.synth.store.ImportantContacts(ctx)
	} else {
		response, err = a.synth.Respond(ctx, result)
	}
	if err != nil {
		log.WithError(err).Errorf("query failed")
		a.metrics.RecordQuery(string(result.Intent), "error", time.Since(start).Seconds())
		return Reply{Result: result}, err
	}

	log.Debugf("query answered")
	a.metrics.RecordQuery(string(result.Intent), "ok", time.Since(start).Seconds())
	a.metrics.RecordConfidence(string(result.Intent), result.Confidence)
	return Reply{Response: response, Result: result}, nil
}

// ProcessQuery is the plain-text entry point: normalize, classify, extract,
// synthesize. It returns an error only when the knowledge store fails.
func (a *Assistant) ProcessQuery(ctx context.Context, raw string) (string, error) {
	reply, err := a.Answer(ctx, raw)
	if err != nil {
		return "", err
	}
	return reply.Response, nil
}
