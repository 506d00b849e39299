package textmodel

import (
	"github.com/navossoc/bayesian"
)

// bayesClassifier wraps the Naive Bayes implementation behind the Classifier
// interface. The wrapped classifier is read-only after training/loading, so
// concurrent Classify calls are safe.
type bayesClassifier struct {
	clf *bayesian.Classifier
}

// Classify implements Classifier. An empty feature vector degrades to the
// class priors, so the argmax label is still returned.
func (b *bayesClassifier) Classify(features []string) Label {
	_, inx, _ := b.clf.LogScores(features)
	return Label(b.clf.Classes[inx])
}
