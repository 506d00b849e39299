package textmodel

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/navossoc/bayesian"
)

// artifactVersion guards against loading vectorizer artifacts written by an
// incompatible build. Bump when vectorizerArtifact changes shape.
const artifactVersion = 1

// vectorizerArtifact is the gob-persisted form of the fitted vectorizer.
type vectorizerArtifact struct {
	Version    int
	Options    Options
	Vocabulary []string
}

// Model is an immutable (classifier, vectorizer) pair. It is created by Fit
// or Load, shared read-only across all classification calls, and never
// reloaded without a restart.
type Model struct {
	clf *bayesClassifier
	vec *vocabVectorizer
}

// Classifier returns the model's classification capability.
func (m *Model) Classifier() Classifier { return m.clf }

// Vectorizer returns the model's vectorization capability.
func (m *Model) Vectorizer() Vectorizer { return m.vec }

// Classify is the convenience composition vectorize → classify.
func (m *Model) Classify(text string) Label {
	return m.clf.Classify(m.vec.Vectorize(text))
}

// Load reads a trained model artifact from disk: the Naive Bayes weights from
// modelPath and the fitted vectorizer from vectorizerPath. Errors wrap
// ErrArtifact and are treated as fatal by callers.
func Load(modelPath, vectorizerPath string) (*Model, error) {
	clf, err := bayesian.NewClassifierFromFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: classifier %q: %v", ErrArtifact, modelPath, err)
	}
	if len(clf.Classes) < 2 {
		return nil, fmt.Errorf("%w: classifier %q has no usable label set", ErrArtifact, modelPath)
	}

	f, err := os.Open(vectorizerPath)
	if err != nil {
		return nil, fmt.Errorf("%w: vectorizer %q: %v", ErrArtifact, vectorizerPath, err)
	}
	defer f.Close()

	var art vectorizerArtifact
	if err := gob.NewDecoder(f).Decode(&art); err != nil {
		return nil, fmt.Errorf("%w: vectorizer %q: %v", ErrArtifact, vectorizerPath, err)
	}
	if art.Version != artifactVersion {
		return nil, fmt.Errorf("%w: vectorizer %q: version %d, want %d",
			ErrArtifact, vectorizerPath, art.Version, artifactVersion)
	}

	vec := newVectorizer(art.Options)
	vec.freeze(art.Vocabulary)

	return &Model{clf: &bayesClassifier{clf: clf}, vec: vec}, nil
}

// Save persists the model artifact to disk as two files, mirroring Load.
func (m *Model) Save(modelPath, vectorizerPath string) error {
	if err := m.clf.clf.WriteToFile(modelPath); err != nil {
		return fmt.Errorf("write classifier %q: %w", modelPath, err)
	}

	f, err := os.Create(vectorizerPath)
	if err != nil {
		return fmt.Errorf("write vectorizer %q: %w", vectorizerPath, err)
	}
	defer f.Close()

	art := vectorizerArtifact{
		Version:    artifactVersion,
		Options:    m.vec.opts,
		Vocabulary: m.vec.vocabulary(),
	}
	if err := gob.NewEncoder(f).Encode(art); err != nil {
		return fmt.Errorf("encode vectorizer %q: %w", vectorizerPath, err)
	}
	return nil
}
