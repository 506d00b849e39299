package textmodel

import "errors"

var (
	// ErrArtifact indicates a model artifact cannot be loaded or is malformed.
	// Fatal at startup: the interpreter never starts without usable models.
	ErrArtifact = errors.New("model artifact cannot be loaded")

	// ErrNoSamples indicates Fit was called with an empty dataset.
	ErrNoSamples = errors.New("training dataset is empty")

	// ErrLabelSet indicates the label set is too small or a sample carries a
	// label outside the declared set.
	ErrLabelSet = errors.New("invalid label set for training")
)
