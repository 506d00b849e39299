package textmodel

// Options configures the text preprocessing pipeline. They are fixed by the
// offline trainer and frozen into the vectorizer artifact; the runtime never
// changes them.
type Options struct {
	Lowercase       bool
	RemoveStopwords bool
	StemTokens      bool
	MaxVocabulary   int // keep only the N most frequent terms; 0 keeps all
	TFIDF           bool
}

// Sample is one labeled training row: raw text and its class label.
type Sample struct {
	Text  string
	Label Label
}
