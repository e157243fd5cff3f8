package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"swasthyaguide-backend/config"
	"swasthyaguide-backend/models"
)

// VoiceService transcribes voice notes through an external speech-to-text
// API. The transcript then flows through the normal text pipeline.
type VoiceService struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// speechLocales maps the session language to the BCP-47 hint sent to the
// transcription API. Hinglish speech is closest to Hindi acoustically.
var speechLocales = map[models.Language]string{
	models.LanguageHindi:    "hi-IN",
	models.LanguageEnglish:  "en-IN",
	models.LanguageHinglish: "hi-IN",
}

func NewVoiceService(cfg config.VoiceAPIConfig) *VoiceService {
	return &VoiceService{
		apiKey: cfg.APIKey,
		apiURL: cfg.URL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Enabled reports whether transcription is configured.
func (s *VoiceService) Enabled() bool {
	return s.apiKey != "" && s.apiURL != ""
}

// Transcribe converts audio bytes to text, hinting the recognizer with the
// session's current language. An empty transcript is returned as an error.
func (s *VoiceService) Transcribe(audioData []byte, lang models.Language) (string, error) {
	if len(audioData) == 0 {
		return "", fmt.Errorf("empty audio payload")
	}
	if !s.Enabled() {
		return "", fmt.Errorf("voice transcription not configured")
	}

	locale, ok := speechLocales[lang]
	if !ok {
		locale = "hi-IN"
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewReader(audioData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Accept-Language", locale)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read transcription response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode transcription response: %w", err)
	}
	if result.Text == "" {
		return "", fmt.Errorf("transcription produced no text")
	}
	return result.Text, nil
}
