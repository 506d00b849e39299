// Package intent classifies a whole utterance into one label of the fixed
// intent set using the intent model artifact.
package intent

import (
	"shadowbuddy/pkg/textmodel"
)

// Classifier scores utterances against the intent model. It holds only
// read-only model handles, so concurrent Classify calls are safe.
type Classifier struct {
	vec textmodel.Vectorizer
	clf textmodel.Classifier
}

// New creates an intent Classifier over the given capabilities. Production
// wiring passes the loaded intent model's vectorizer and classifier; tests
// pass stubs.
func New(vec textmodel.Vectorizer, clf textmodel.Classifier) *Classifier {
	return &Classifier{vec: vec, clf: clf}
}

// Classify returns the argmax intent label for the utterance. There is no
// confidence threshold or reject path: an utterance with no vocabulary
// overlap still yields the model's best label, and any label the parser does
// not recognize degrades to the Unknown command downstream.
func (c *Classifier) Classify(utterance string) Label {
	return Label(c.clf.Classify(c.vec.Vectorize(utterance)))
}
