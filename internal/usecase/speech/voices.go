package speech

import "github.com/cantotalk/aacboard-backend/internal/domain"

// Static voice catalog, two language groups with six entries each. The ids
// match what the board frontend stores in card data.
var voiceCatalog = map[string][]domain.Voice{
	"en": {
		{ID: "en-US-Neural-A", Name: "English (US) - Female", Language: "en-US", Gender: "female"},
		{ID: "en-US-Neural-B", Name: "English (US) - Male", Language: "en-US", Gender: "male"},
		{ID: "en-GB-Neural-A", Name: "English (UK) - Female", Language: "en-GB", Gender: "female"},
		{ID: "en-GB-Neural-B", Name: "English (UK) - Male", Language: "en-GB", Gender: "male"},
		{ID: "en-AU-Neural-A", Name: "English (AU) - Female", Language: "en-AU", Gender: "female"},
		{ID: "en-AU-Neural-B", Name: "English (AU) - Male", Language: "en-AU", Gender: "male"},
	},
	"zh-HK": {
		{ID: "zh-HK-Standard-A", Name: "Cantonese - Female 1", Language: "zh-HK", Gender: "female"},
		{ID: "zh-HK-Standard-B", Name: "Cantonese - Male 1", Language: "zh-HK", Gender: "male"},
		{ID: "zh-HK-Standard-C", Name: "Cantonese - Female 2", Language: "zh-HK", Gender: "female"},
		{ID: "zh-HK-Standard-D", Name: "Cantonese - Male 2", Language: "zh-HK", Gender: "male"},
		{ID: "zh-HK-Wavenet-A", Name: "Cantonese - Premium Female", Language: "zh-HK", Gender: "female"},
		{ID: "zh-HK-Wavenet-B", Name: "Cantonese - Premium Male", Language: "zh-HK", Gender: "male"},
	},
}

// VoicesResult is the catalog slice for one requested language.
type VoicesResult struct {
	Voices   []domain.Voice `json:"voices"`
	Language string         `json:"language"`
}

// Voices returns the catalog for the requested language. An unrecognized
// code returns the full catalog rather than an error.
func (uc *SpeechUseCase) Voices(language string) *VoicesResult {
	if voices, ok := voiceCatalog[language]; ok {
		return &VoicesResult{Voices: voices, Language: language}
	}

	all := make([]domain.Voice, 0, len(voiceCatalog["en"])+len(voiceCatalog["zh-HK"]))
	all = append(all, voiceCatalog["en"]...)
	all = append(all, voiceCatalog["zh-HK"]...)
	return &VoicesResult{Voices: all, Language: language}
}
