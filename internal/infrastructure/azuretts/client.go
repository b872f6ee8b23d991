package azuretts

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	"github.com/cantotalk/aacboard-backend/internal/config"
)

const (
	endpointFormat = "https://%s.tts.speech.microsoft.com/cognitiveservices/v1"
	outputFormat   = "audio-16khz-128kbitrate-mono-mp3"
	userAgent      = "aacboard-backend"

	defaultLocale        = "en-US"
	cantoneseLocale      = "zh-HK"
	defaultEnglishVoice  = "en-US-JennyNeural"
	defaultCantonesVoice = "zh-HK-HiuMaanNeural"
)

// localeByLanguage maps app language codes to Azure locales. Unmapped codes
// fall back to en-US.
var localeByLanguage = map[string]string{
	"en":    "en-US",
	"en-US": "en-US",
	"en-GB": "en-GB",
	"en-AU": "en-AU",
	"zh-HK": cantoneseLocale,
	"yue":   cantoneseLocale,
}

// voiceByID maps the catalog voice ids the frontend knows to Azure neural
// voice names.
var voiceByID = map[string]string{
	"en-US-Neural-A":   "en-US-JennyNeural",
	"en-US-Neural-B":   "en-US-GuyNeural",
	"en-GB-Neural-A":   "en-GB-SoniaNeural",
	"en-GB-Neural-B":   "en-GB-RyanNeural",
	"en-AU-Neural-A":   "en-AU-NatashaNeural",
	"en-AU-Neural-B":   "en-AU-WilliamNeural",
	"zh-HK-Standard-A": "zh-HK-HiuGaaiNeural",
	"zh-HK-Standard-B": "zh-HK-WanLungNeural",
	"zh-HK-Standard-C": "zh-HK-HiuMaanNeural",
	"zh-HK-Standard-D": "zh-HK-WanLungNeural",
	"zh-HK-Wavenet-A":  "zh-HK-HiuMaanNeural",
	"zh-HK-Wavenet-B":  "zh-HK-WanLungNeural",
}

// Client calls the Azure Cognitive Services TTS REST endpoint.
type Client struct {
	key        string
	region     string
	httpClient *http.Client
}

func NewClient(cfg *config.TTSConfig) *Client {
	return &Client{
		key:    cfg.Key,
		region: cfg.Region,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Configured reports whether a provider credential is present. When false,
// callers must use the browser fallback instead of calling Synthesize.
func (c *Client) Configured() bool {
	return c.key != ""
}

// Synthesize converts text to MP3 audio. Rate and pitch are expected to be
// pre-clamped to [0.5, 2.0].
func (c *Client) Synthesize(ctx context.Context, text, language, voiceID string, rate, pitch float64) ([]byte, error) {
	locale := resolveLocale(language)
	voice := resolveVoice(voiceID, locale)
	ssml := buildSSML(text, locale, voice, rate, pitch)

	url := fmt.Sprintf(endpointFormat, c.region)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBufferString(ssml))
	if err != nil {
		return nil, fmt.Errorf("failed to build synthesis request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", outputFormat)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("synthesis returned status %d: %s", resp.StatusCode, body)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesis response: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("synthesis returned empty audio")
	}
	return audio, nil
}

func resolveLocale(language string) string {
	if locale, ok := localeByLanguage[language]; ok {
		return locale
	}
	return defaultLocale
}

func resolveVoice(voiceID, locale string) string {
	if voice, ok := voiceByID[voiceID]; ok {
		return voice
	}
	if locale == cantoneseLocale {
		return defaultCantonesVoice
	}
	return defaultEnglishVoice
}

// buildSSML renders the synthesis payload. Pitch is expressed as a signed
// percentage offset from the neutral 1.0.
func buildSSML(text, locale, voice string, rate, pitch float64) string {
	var escaped bytes.Buffer
	xml.EscapeText(&escaped, []byte(text))

	pitchPct := (pitch - 1.0) * 100

	return fmt.Sprintf(
		`<speak version='1.0' xml:lang='%s'><voice xml:lang='%s' name='%s'><prosody rate='%.2f' pitch='%+.0f%%'>%s</prosody></voice></speak>`,
		locale, locale, voice, rate, pitchPct, escaped.String(),
	)
}
