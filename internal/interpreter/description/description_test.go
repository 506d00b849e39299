package description_test

import (
	"testing"

	"shadowbuddy/internal/interpreter/description"
	"shadowbuddy/pkg/textmodel"
)

type passthroughVectorizer struct{}

func (passthroughVectorizer) Vectorize(text string) []string { return []string{text} }

// tableClassifier labels a token by lookup, defaulting to "description".
type tableClassifier struct {
	labels map[string]textmodel.Label
}

func (c tableClassifier) Classify(features []string) textmodel.Label {
	if len(features) == 0 {
		return "other"
	}
	if label, ok := c.labels[features[0]]; ok {
		return label
	}
	return "description"
}

func newExtractor(labels map[string]textmodel.Label) *description.Extractor {
	return description.New(passthroughVectorizer{}, tableClassifier{labels: labels})
}

func TestExtract(t *testing.T) {
	t.Run("Description After Command Token", func(t *testing.T) {
		e := newExtractor(map[string]textmodel.Label{"todo": "command"})
		if got := e.Extract("todo buy milk"); got != "buy milk" {
			t.Errorf("got %q, want %q", got, "buy milk")
		}
	})

	t.Run("No Command Token Returns Empty", func(t *testing.T) {
		e := newExtractor(map[string]textmodel.Label{"todo": "command"})
		if got := e.Extract("buy milk"); got != "" {
			t.Errorf("got %q, want empty string", got)
		}
	})

	t.Run("Tokens Before Command Are Discarded", func(t *testing.T) {
		e := newExtractor(map[string]textmodel.Label{"todo": "command"})
		if got := e.Extract("please todo buy milk"); got != "buy milk" {
			t.Errorf("got %q, want %q", got, "buy milk")
		}
	})

	t.Run("Other Tokens Are Skipped Mid Run", func(t *testing.T) {
		e := newExtractor(map[string]textmodel.Label{
			"todo": "command",
			"by":   "other",
		})
		if got := e.Extract("todo buy milk by tomorrow"); got != "buy milk tomorrow" {
			t.Errorf("got %q, want %q", got, "buy milk tomorrow")
		}
	})

	t.Run("Second Command Token Is Excluded Not Reset", func(t *testing.T) {
		e := newExtractor(map[string]textmodel.Label{
			"todo": "command",
			"add":  "command",
		})
		if got := e.Extract("todo buy add milk"); got != "buy milk" {
			t.Errorf("got %q, want %q", got, "buy milk")
		}
	})

	t.Run("Repeated Whitespace Is Collapsed", func(t *testing.T) {
		e := newExtractor(map[string]textmodel.Label{"todo": "command"})
		if got := e.Extract("todo   buy   milk"); got != "buy milk" {
			t.Errorf("got %q, want %q", got, "buy milk")
		}
	})
}
