// Package description recovers the description span of an utterance by
// classifying each whitespace token independently with the token-label model.
package description

import (
	"strings"

	"shadowbuddy/pkg/textmodel"
)

// TokenLabel is the per-word classification produced by the token model.
type TokenLabel string

const (
	TokenDescription TokenLabel = "description"
	TokenCommand     TokenLabel = "command"
	TokenOther       TokenLabel = "other"
)

// Labels is the frozen token label set, in training-dataset order.
func Labels() []textmodel.Label {
	return []textmodel.Label{
		textmodel.Label(TokenDescription),
		textmodel.Label(TokenCommand),
		textmodel.Label(TokenOther),
	}
}

// Extractor labels tokens with the description model and assembles the
// contiguous run of description tokens that follows the first command token.
type Extractor struct {
	vec textmodel.Vectorizer
	clf textmodel.Classifier
}

// New creates an Extractor over the given capabilities.
func New(vec textmodel.Vectorizer, clf textmodel.Classifier) *Extractor {
	return &Extractor{vec: vec, clf: clf}
}

// Extract returns the space-joined description tokens appearing after the
// first command-labeled token, trimmed. Tokens are classified independently
// of their neighbours; a token before the first command token is discarded
// regardless of its own label, and a second command token is excluded without
// resetting anything. Returns "" when no command token is found.
//
// One classifier invocation per token, each side-effect-free.
func (e *Extractor) Extract(utterance string) string {
	var out strings.Builder
	commandFound := false

	for _, token := range strings.Fields(utterance) {
		label := TokenLabel(e.clf.Classify(e.vec.Vectorize(token)))

		if label == TokenCommand {
			commandFound = true
			continue
		}
		if commandFound && label == TokenDescription {
			out.WriteString(token)
			out.WriteString(" ")
		}
	}

	return strings.TrimSpace(out.String())
}
