package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"shadowbuddy/internal/interpreter/intent"
	"shadowbuddy/pkg/log"
	"shadowbuddy/pkg/textmodel"
)

func main() {
	var (
		dataset        = flag.String("dataset", "datasets/intent.csv", "labelled utterances, CSV with text,label columns")
		modelPath      = flag.String("model", "models/intent.model", "output path for the classifier artifact")
		vectorizerPath = flag.String("vectorizer", "models/intent.vectorizer", "output path for the vectorizer artifact")
	)
	flag.Parse()

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})
	ctx := context.Background()

	samples, err := loadSamples(*dataset)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load dataset: %v", err)
	}
	logger.Infof(ctx, "Loaded %d samples from %s", len(samples), *dataset)

	model, err := textmodel.Fit(samples, intent.Labels(), textmodel.Options{
		Lowercase:       true,
		RemoveStopwords: true,
		StemTokens:      true,
		MaxVocabulary:   5000,
		TFIDF:           true,
	})
	if err != nil {
		logger.Fatalf(ctx, "Training failed: %v", err)
	}

	if err := model.Save(*modelPath, *vectorizerPath); err != nil {
		logger.Fatalf(ctx, "Failed to save artifacts: %v", err)
	}
	logger.Infof(ctx, "Intent model written to %s and %s", *modelPath, *vectorizerPath)
}

// loadSamples reads a two-column CSV (text,label) with a header row.
func loadSamples(path string) ([]textmodel.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	if _, err := r.Read(); err != nil { // header
		return nil, err
	}

	var samples []textmodel.Sample
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		samples = append(samples, textmodel.Sample{
			Text:  rec[0],
			Label: textmodel.Label(rec[1]),
		})
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("dataset %s has no samples", path)
	}
	return samples, nil
}
