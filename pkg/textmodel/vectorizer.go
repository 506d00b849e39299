package textmodel

import (
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/kljensen/snowball/english"
)

// vocabVectorizer is the concrete Vectorizer: lowercase → stopword removal →
// whitespace tokenization → stemming → frozen-vocabulary filter. Tokens are
// processed independently; no surrounding context leaks into a feature.
type vocabVectorizer struct {
	opts  Options
	vocab map[string]struct{} // nil while fitting (no filtering yet)
}

func newVectorizer(opts Options) *vocabVectorizer {
	return &vocabVectorizer{opts: opts}
}

// Vectorize implements Vectorizer.
func (v *vocabVectorizer) Vectorize(text string) []string {
	tokens := v.terms(text)
	if v.vocab == nil {
		return tokens
	}
	kept := tokens[:0]
	for _, tok := range tokens {
		if _, ok := v.vocab[tok]; ok {
			kept = append(kept, tok)
		}
	}
	return kept
}

// terms runs the preprocessing pipeline without the vocabulary filter.
func (v *vocabVectorizer) terms(text string) []string {
	if v.opts.Lowercase {
		text = strings.ToLower(text)
	}
	if v.opts.RemoveStopwords {
		text = stopwords.CleanString(text, "en", false)
	}

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if v.opts.StemTokens {
			tok = english.Stem(tok, false)
		}
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// freeze installs the fitted vocabulary. Called once by Fit; never at runtime.
func (v *vocabVectorizer) freeze(vocabulary []string) {
	v.vocab = make(map[string]struct{}, len(vocabulary))
	for _, term := range vocabulary {
		v.vocab[term] = struct{}{}
	}
}

// vocabulary returns the frozen terms in stable order for persistence.
func (v *vocabVectorizer) vocabulary() []string {
	terms := make([]string, 0, len(v.vocab))
	for term := range v.vocab {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
