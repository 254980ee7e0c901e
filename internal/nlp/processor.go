package nlp

import "time"

// QueryResult is the full outcome of running one query through the NLP
// front end. Produced fresh per query and discarded after the response is
// rendered.
type QueryResult struct {
	OriginalText   string    `json:"original_text"`
	NormalizedText string    `json:"normalized_text"`
	Intent         Intent    `json:"intent"`
	Confidence     float64   `json:"confidence"`
	Entities       EntitySet `json:"entities"`
}

// Processor combines normalization, classification, and entity extraction.
type Processor struct {
	classifier *Classifier
	extractor  *Extractor
}

// NewProcessor creates a processor using the system clock for relative-day
// resolution.
func NewProcessor() *Processor {
	return NewProcessorWithClock(time.Now)
}

// NewProcessorWithClock creates a processor with an injected clock.
func NewProcessorWithClock(now func() time.Time) *Processor {
	return &Processor{
		classifier: NewClassifier(),
		extractor:  NewExtractorWithClock(now),
	}
}

// Process runs the full NLP pipeline on raw input text. The classifier and
// extractor both operate on the same normalized text.
func (p *Processor) Process(raw string) QueryResult {
	normalized := Normalize(raw)
	intent, confidence := p.classifier.Classify(normalized)
	entities := p.extractor.Extract(normalized)

	return QueryResult{
		OriginalText:   raw,
		NormalizedText: normalized,
		Intent:         intent,
		Confidence:     confidence,
		Entities:       entities,
	}
}
