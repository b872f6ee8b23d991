package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cantotalk/aacboard-backend/internal/delivery/http/middleware"
	"github.com/cantotalk/aacboard-backend/internal/usecase/speech"
)

type TTSHandler struct {
	speechUseCase *speech.SpeechUseCase
}

func NewTTSHandler(speechUseCase *speech.SpeechUseCase) *TTSHandler {
	return &TTSHandler{
		speechUseCase: speechUseCase,
	}
}

// Voices handles GET /tts/voices?language=
// @Summary List TTS voices
// @Description List the voice catalog for a language; unknown codes return every voice
// @Tags tts
// @Produce json
// @Param language query string false "Language code (en, zh-HK)"
// @Success 200 {object} speech.VoicesResult
// @Router /tts/voices [get]
func (h *TTSHandler) Voices(c *gin.Context) {
	language := c.DefaultQuery("language", "en")
	c.JSON(http.StatusOK, h.speechUseCase.Voices(language))
}

// Speak handles POST /tts/speak
// @Summary Synthesize speech
// @Description Generate audio for a phrase; degrades to a browser-side fallback when the provider is unavailable
// @Tags tts
// @Accept json
// @Produce json
// @Param request body speech.SpeakRequest true "Synthesis parameters"
// @Success 200 {object} speech.SpeakResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tts/speak [post]
func (h *TTSHandler) Speak(c *gin.Context) {
	var req speech.SpeakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	userID := middleware.CurrentUserID(c)

	result, err := h.speechUseCase.Speak(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "TTS generation failed")
		return
	}

	c.JSON(http.StatusOK, result)
}
