package speech

import (
	"context"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cantotalk/aacboard-backend/internal/domain"
)

const (
	// MethodBrowser tells the client to synthesize locally with the
	// SpeechSynthesis API.
	MethodBrowser = "browser_tts"
	// MethodAzure marks audio generated by the cloud provider.
	MethodAzure = "azure_tts"

	fallbackMessage = "TTS provider unavailable, use browser SpeechSynthesis API"

	minRate  = 0.5
	maxRate  = 2.0
	minPitch = 0.5
	maxPitch = 2.0
)

// Synthesizer is the outbound TTS provider.
type Synthesizer interface {
	Configured() bool
	Synthesize(ctx context.Context, text, language, voiceID string, rate, pitch float64) ([]byte, error)
}

type SpeechUseCase struct {
	synthesizer Synthesizer
	uploadsDir  string
	log         *logrus.Logger
}

func NewSpeechUseCase(synthesizer Synthesizer, uploadsDir string, log *logrus.Logger) *SpeechUseCase {
	return &SpeechUseCase{
		synthesizer: synthesizer,
		uploadsDir:  uploadsDir,
		log:         log,
	}
}

// SpeakRequest is an ephemeral synthesis request. Rate and pitch default to
// 1.0 when absent and are clamped to [0.5, 2.0].
type SpeakRequest struct {
	Text     string   `json:"text"`
	Language string   `json:"language"`
	VoiceID  string   `json:"voice_id"`
	Rate     *float64 `json:"rate"`
	Pitch    *float64 `json:"pitch"`
}

// SpeakResponse echoes the effective parameters. A nil AudioURL with
// MethodBrowser instructs the client to synthesize locally; this is a valid
// success, not an error.
type SpeakResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	VoiceID  string  `json:"voice_id"`
	Rate     float64 `json:"rate"`
	Pitch    float64 `json:"pitch"`
	AudioURL *string `json:"audio_url"`
	Method   string  `json:"method"`
	Message  string  `json:"message,omitempty"`
}

// Speak runs the synthesis pipeline. Provider failures degrade to the
// browser fallback and are never surfaced to the caller. userID 0 is the
// anonymous bucket.
func (uc *SpeechUseCase) Speak(ctx context.Context, userID int, req *SpeakRequest) (*SpeakResponse, error) {
	if req.Text == "" {
		return nil, domain.ErrEmptyText
	}

	rate := clamp(valueOr(req.Rate, 1.0), minRate, maxRate)
	pitch := clamp(valueOr(req.Pitch, 1.0), minPitch, maxPitch)

	if uc.synthesizer == nil || !uc.synthesizer.Configured() {
		return uc.fallback(req, rate, pitch), nil
	}

	audio, err := uc.synthesizer.Synthesize(ctx, req.Text, req.Language, req.VoiceID, rate, pitch)
	if err != nil {
		uc.log.WithError(err).WithFields(logrus.Fields{
			"language": req.Language,
			"voice_id": req.VoiceID,
		}).Warn("speech synthesis failed, degrading to browser fallback")
		return uc.fallback(req, rate, pitch), nil
	}

	audioURL, err := uc.store(userID, req.Text, req.VoiceID, audio)
	if err != nil {
		uc.log.WithError(err).WithField("user_id", userID).Error("failed to store synthesized audio")
		return nil, fmt.Errorf("failed to store synthesized audio: %w", err)
	}

	return &SpeakResponse{
		Text:     req.Text,
		Language: req.Language,
		VoiceID:  req.VoiceID,
		Rate:     rate,
		Pitch:    pitch,
		AudioURL: &audioURL,
		Method:   MethodAzure,
	}, nil
}

func (uc *SpeechUseCase) fallback(req *SpeakRequest, rate, pitch float64) *SpeakResponse {
	return &SpeakResponse{
		Text:     req.Text,
		Language: req.Language,
		VoiceID:  req.VoiceID,
		Rate:     rate,
		Pitch:    pitch,
		AudioURL: nil,
		Method:   MethodBrowser,
		Message:  fallbackMessage,
	}
}

// store writes the audio under a per-user directory and returns its public
// path.
func (uc *SpeechUseCase) store(userID int, text, voiceID string, audio []byte) (string, error) {
	userDir := fmt.Sprintf("user_%d", userID)
	dir := filepath.Join(uc.uploadsDir, userDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	hash := sha1.Sum([]byte(fmt.Sprintf("%s|%s|%d", text, voiceID, time.Now().UnixNano())))
	filename := fmt.Sprintf("tts_%x.mp3", hash)

	if err := os.WriteFile(filepath.Join(dir, filename), audio, 0o644); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}

	return fmt.Sprintf("/uploads/%s/%s", userDir, filename), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
