package intent_test

import (
	"testing"

	"shadowbuddy/internal/interpreter/intent"
	"shadowbuddy/pkg/textmodel"
)

type stubVectorizer struct{}

func (stubVectorizer) Vectorize(text string) []string {
	if text == "" {
		return nil
	}
	return []string{text}
}

type stubClassifier struct {
	label textmodel.Label
	seen  [][]string
}

func (s *stubClassifier) Classify(features []string) textmodel.Label {
	s.seen = append(s.seen, features)
	return s.label
}

func TestClassify(t *testing.T) {
	t.Run("Returns Model Label", func(t *testing.T) {
		clf := &stubClassifier{label: "deadline"}
		c := intent.New(stubVectorizer{}, clf)
		if got := c.Classify("return book by friday"); got != intent.LabelDeadline {
			t.Errorf("got %q, want deadline", got)
		}
	})

	t.Run("Features Flow Through Vectorizer", func(t *testing.T) {
		clf := &stubClassifier{label: "todo"}
		c := intent.New(stubVectorizer{}, clf)
		c.Classify("buy milk")
		if len(clf.seen) != 1 || len(clf.seen[0]) != 1 || clf.seen[0][0] != "buy milk" {
			t.Errorf("classifier saw %v", clf.seen)
		}
	})

	t.Run("No Reject Path On Empty Features", func(t *testing.T) {
		clf := &stubClassifier{label: "unknown"}
		c := intent.New(stubVectorizer{}, clf)
		if got := c.Classify(""); got != intent.LabelUnknown {
			t.Errorf("got %q, want unknown", got)
		}
	})
}
