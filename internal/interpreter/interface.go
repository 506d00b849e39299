// Package interpreter defines the contracts of the utterance interpretation
// pipeline: one complete utterance in, one structured command or one typed
// error out.
package interpreter

import (
	"context"

	"shadowbuddy/internal/interpreter/intent"
	"shadowbuddy/internal/model"
)

// Parser converts a raw utterance into a structured command.
type Parser interface {
	Parse(ctx context.Context, utterance string) (model.Command, error)
}

// IntentClassifier maps a whole utterance to one intent label. Pure function
// of the utterance and the frozen model state.
type IntentClassifier interface {
	Classify(utterance string) intent.Label
}

// DescriptionExtractor recovers the description span of an utterance via
// per-token classification.
type DescriptionExtractor interface {
	Extract(utterance string) string
}
