// Package parser sequences intent classification, date, index, and
// description extraction into a single pass that emits one structured command
// per utterance.
package parser

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"shadowbuddy/internal/interpreter"
	"shadowbuddy/internal/model"
	pkgLog "shadowbuddy/pkg/log"
)

// Parser is the orchestrator. Parsing is a pure function of the utterance and
// the frozen model state, so successful results are memoised in a bounded LRU.
type Parser struct {
	l            pkgLog.Logger
	intents      interpreter.IntentClassifier
	descriptions interpreter.DescriptionExtractor
	cache        *lru.Cache[string, model.Command]
}

// Ensure Parser implements the interpreter contract.
var _ interpreter.Parser = (*Parser)(nil)

// New creates a Parser. cacheSize <= 0 disables memoisation.
func New(l pkgLog.Logger, intents interpreter.IntentClassifier, descriptions interpreter.DescriptionExtractor, cacheSize int) *Parser {
	p := &Parser{
		l:            l,
		intents:      intents,
		descriptions: descriptions,
	}
	if cacheSize > 0 {
		// lru.New only fails on a non-positive size, which is guarded above.
		p.cache, _ = lru.New[string, model.Command](cacheSize)
	}
	return p
}
