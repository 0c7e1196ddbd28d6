package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Sentiment labels as reported by the classifier.
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
)

// SentimentResult is a classifier verdict: a label and how confident the
// model is in it (0-1).
type SentimentResult struct {
	Label string
	Score float64
}

// SentimentClassifier scores free text. Implementations may be remote
// and flaky; callers must treat any error as "no opinion".
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (SentimentResult, error)
}

// HuggingFaceClassifier calls a Hugging Face inference endpoint hosting
// a 2-class sentiment model.
type HuggingFaceClassifier struct {
	URL    string
	Token  string
	Client *http.Client
}

func NewHuggingFaceClassifier(url, token string) *HuggingFaceClassifier {
	return &HuggingFaceClassifier{
		URL:    url,
		Token:  token,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (h *HuggingFaceClassifier) Classify(ctx context.Context, text string) (SentimentResult, error) {
	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return SentimentResult{}, fmt.Errorf("encode sentiment request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(body))
	if err != nil {
		return SentimentResult{}, fmt.Errorf("build sentiment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.Token != "" {
		req.Header.Set("Authorization", "Bearer "+h.Token)
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return SentimentResult{}, fmt.Errorf("sentiment request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return SentimentResult{}, fmt.Errorf("sentiment request: status %d", resp.StatusCode)
	}

	// The inference API answers with one candidate list per input.
	var candidates [][]struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return SentimentResult{}, fmt.Errorf("decode sentiment response: %w", err)
	}
	if len(candidates) == 0 || len(candidates[0]) == 0 {
		return SentimentResult{}, fmt.Errorf("empty sentiment response")
	}
	best := candidates[0][0]
	for _, c := range candidates[0][1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return SentimentResult{Label: best.Label, Score: best.Score}, nil
}

// SentimentScorer folds classifier verdicts into the signed [-1, 1]
// scalar stored alongside records. It degrades to neutral on every
// failure path so sentiment can never block a write.
type SentimentScorer struct {
	Classifier SentimentClassifier
	Timeout    time.Duration
}

func NewSentimentScorer(classifier SentimentClassifier) *SentimentScorer {
	return &SentimentScorer{Classifier: classifier, Timeout: 5 * time.Second}
}

// ScoreText returns the signed sentiment of text: +confidence for a
// positive verdict, -confidence otherwise. Empty text, an absent
// classifier, a timeout or any classifier error all yield 0.
func (s *SentimentScorer) ScoreText(ctx context.Context, text string) float64 {
	if strings.TrimSpace(text) == "" || s.Classifier == nil {
		return 0
	}
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()
	res, err := s.Classifier.Classify(ctx, text)
	if err != nil {
		log.Printf("sentiment analysis unavailable, treating as neutral: %v", err)
		return 0
	}
	if res.Label == SentimentPositive {
		return res.Score
	}
	return -res.Score
}
