// Package textmodel provides the text-classification capability used by the
// interpreter: a vectorizer that projects raw text into token features, a
// Naive Bayes classifier scoring those features against a frozen label set,
// and the immutable on-disk artifact pairing the two. Artifacts are produced
// offline (scripts/train-*) and loaded once at process start.
package textmodel

// Label is a class label produced by a classifier.
type Label string

// Vectorizer projects raw text into the token features a classifier scores.
// Implementations are pure: no state is mutated by Vectorize.
type Vectorizer interface {
	Vectorize(text string) []string
}

// Classifier scores a feature vector against its frozen label set and returns
// the argmax label. There is no reject path: an empty or fully out-of-vocabulary
// feature vector still yields the best (possibly low-confidence) label.
type Classifier interface {
	Classify(features []string) Label
}
