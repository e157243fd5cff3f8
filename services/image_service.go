package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"swasthyaguide-backend/config"
	"swasthyaguide-backend/models"
)

const (
	minImageSize = 1 << 10  // 1KB
	maxImageSize = 10 << 20 // 10MB
)

// ImageService sends photos to an external classification model and returns
// its top label. Interpretation of the label is the composer's job; this
// service never produces user-facing text.
type ImageService struct {
	apiKey     string
	modelURL   string
	httpClient *http.Client
}

func NewImageService(cfg config.ImageAPIConfig) *ImageService {
	return &ImageService{
		apiKey:   cfg.APIKey,
		modelURL: cfg.ModelURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Enabled reports whether the external model is configured.
func (s *ImageService) Enabled() bool {
	return s.apiKey != "" && s.modelURL != ""
}

// Analyze validates the image bytes and queries the model. It returns the
// highest-confidence label, or an error the caller should translate into the
// could-not-read reply.
func (s *ImageService) Analyze(imageData []byte) (*models.ImageAnalysis, error) {
	if err := s.validate(imageData); err != nil {
		return nil, err
	}
	if !s.Enabled() {
		return nil, fmt.Errorf("image analysis not configured")
	}

	req, err := http.NewRequest("POST", s.modelURL, bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image analysis request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image analysis failed with status %d: %s", resp.StatusCode, string(body))
	}

	// Inference responses are a score-sorted label list.
	var labels []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal(body, &labels); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("analysis returned no labels")
	}

	top := labels[0]
	for _, l := range labels[1:] {
		if l.Score > top.Score {
			top = l
		}
	}
	return &models.ImageAnalysis{
		Condition:  top.Label,
		Confidence: top.Score,
	}, nil
}

// validate enforces size bounds and accepted formats before any network call.
func (s *ImageService) validate(imageData []byte) error {
	if len(imageData) < minImageSize {
		return fmt.Errorf("image too small (%d bytes), likely truncated", len(imageData))
	}
	if len(imageData) > maxImageSize {
		return fmt.Errorf("image too large (%d bytes), limit is 10MB", len(imageData))
	}

	switch contentType := http.DetectContentType(imageData); contentType {
	case "image/jpeg", "image/png", "image/webp":
		return nil
	default:
		return fmt.Errorf("unsupported image format %q", contentType)
	}
}

// AnalyzeWithRetry retries transient failures once after a short pause.
// Hosted models return errors while the model is loading.
func (s *ImageService) AnalyzeWithRetry(imageData []byte) (*models.ImageAnalysis, error) {
	analysis, err := s.Analyze(imageData)
	if err == nil {
		return analysis, nil
	}
	if verr := s.validate(imageData); verr != nil {
		return nil, err
	}
	time.Sleep(2 * time.Second)
	return s.Analyze(imageData)
}
