package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cantotalk/aacboard-backend/internal/delivery/http/middleware"
	"github.com/cantotalk/aacboard-backend/internal/domain"
	"github.com/cantotalk/aacboard-backend/internal/usecase/placement"
)

type PlacementHandler struct {
	placementUseCase *placement.PlacementUseCase
}

func NewPlacementHandler(placementUseCase *placement.PlacementUseCase) *PlacementHandler {
	return &PlacementHandler{
		placementUseCase: placementUseCase,
	}
}

type addPlacementBody struct {
	ProfileID int   `json:"profile_id"`
	CardID    int   `json:"card_id"`
	RowIndex  int   `json:"row_index" binding:"gte=0"`
	ColIndex  int   `json:"col_index" binding:"gte=0"`
	PageIndex int   `json:"page_index" binding:"gte=0"`
	IsVisible *bool `json:"is_visible"`
}

// Add handles POST /profile-cards
// @Summary Add card to profile
// @Description Place a card at a grid position of an owned profile
// @Tags profile-cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body addPlacementBody true "Placement data"
// @Success 201 {object} domain.Placement
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile-cards [post]
func (h *PlacementHandler) Add(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var body addPlacementBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if body.ProfileID == 0 || body.CardID == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "profile_id and card_id are required"})
		return
	}

	result, err := h.placementUseCase.Add(c.Request.Context(), user.ID, &placement.AddPlacementRequest{
		ProfileID: body.ProfileID,
		CardID:    body.CardID,
		RowIndex:  body.RowIndex,
		ColIndex:  body.ColIndex,
		PageIndex: body.PageIndex,
		IsVisible: body.IsVisible,
	})
	if err != nil {
		respondError(c, err, "failed to add card to profile")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Update handles PUT /profile-cards/:id
// @Summary Update placement
// @Description Change position or visibility of a placement in an owned profile
// @Tags profile-cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Placement ID"
// @Param request body domain.PlacementPatch true "Fields to update"
// @Success 200 {object} domain.Placement
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile-cards/{id} [put]
func (h *PlacementHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid placement id"})
		return
	}

	var patch domain.PlacementPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.placementUseCase.Update(c.Request.Context(), user.ID, id, &patch)
	if err != nil {
		respondError(c, err, "failed to update profile-card")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Remove handles DELETE /profile-cards/:id
// @Summary Remove card from profile
// @Description Delete a placement from an owned profile
// @Tags profile-cards
// @Security BearerAuth
// @Produce json
// @Param id path int true "Placement ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile-cards/{id} [delete]
func (h *PlacementHandler) Remove(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid placement id"})
		return
	}

	if err := h.placementUseCase.Remove(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, err, "failed to remove card from profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Card removed from profile"})
}

// List handles GET /profile-cards?profile_id=
// @Summary List profile cards
// @Description List all placements of a profile in reading order (page, row, column)
// @Tags profile-cards
// @Security BearerAuth
// @Produce json
// @Param profile_id query int true "Profile ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile-cards [get]
func (h *PlacementHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	profileIDStr := c.Query("profile_id")
	if profileIDStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "profile_id parameter is required"})
		return
	}
	profileID, err := strconv.Atoi(profileIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile_id"})
		return
	}

	cards, err := h.placementUseCase.ListForProfile(c.Request.Context(), user.ID, profileID)
	if err != nil {
		respondError(c, err, "failed to fetch profile cards")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards})
}
