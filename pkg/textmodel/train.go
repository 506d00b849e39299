package textmodel

import (
	"fmt"
	"sort"

	"github.com/navossoc/bayesian"
)

// Fit trains a model on the given dataset. The vectorizer is fitted on this
// dataset only (vocabulary = the MaxVocabulary most frequent terms), then the
// Naive Bayes classifier is trained on the vectorized samples. Fit lives in
// the offline trainers' path; the runtime interpreter only ever calls Load.
func Fit(samples []Sample, labels []Label, opts Options) (*Model, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if len(labels) < 2 {
		return nil, fmt.Errorf("%w: need at least two labels, got %d", ErrLabelSet, len(labels))
	}

	known := make(map[Label]struct{}, len(labels))
	classes := make([]bayesian.Class, 0, len(labels))
	for _, label := range labels {
		if _, dup := known[label]; dup {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrLabelSet, label)
		}
		known[label] = struct{}{}
		classes = append(classes, bayesian.Class(label))
	}
	for _, s := range samples {
		if _, ok := known[s.Label]; !ok {
			return nil, fmt.Errorf("%w: sample label %q not in label set", ErrLabelSet, s.Label)
		}
	}

	vec := newVectorizer(opts)
	vec.freeze(selectVocabulary(vec, samples, opts.MaxVocabulary))

	var clf *bayesian.Classifier
	if opts.TFIDF {
		clf = bayesian.NewClassifierTfIdf(classes...)
	} else {
		clf = bayesian.NewClassifier(classes...)
	}

	for _, s := range samples {
		features := vec.Vectorize(s.Text)
		if len(features) == 0 {
			continue
		}
		clf.Learn(features, bayesian.Class(s.Label))
	}
	if opts.TFIDF {
		clf.ConvertTermsFreqToTfIdf()
	}

	return &Model{clf: &bayesClassifier{clf: clf}, vec: vec}, nil
}

// selectVocabulary returns the max most frequent preprocessed terms across the
// dataset. Ties break alphabetically so training is deterministic.
func selectVocabulary(vec *vocabVectorizer, samples []Sample, max int) []string {
	counts := make(map[string]int)
	for _, s := range samples {
		for _, term := range vec.terms(s.Text) {
			counts[term]++
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if max > 0 && len(terms) > max {
		terms = terms[:max]
	}
	return terms
}
