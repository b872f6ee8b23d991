package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cantotalk/aacboard-backend/internal/delivery/http/middleware"
	"github.com/cantotalk/aacboard-backend/internal/usecase/communicator"
)

type CommunicatorHandler struct {
	communicatorUseCase *communicator.CommunicatorUseCase
}

func NewCommunicatorHandler(communicatorUseCase *communicator.CommunicatorUseCase) *CommunicatorHandler {
	return &CommunicatorHandler{
		communicatorUseCase: communicatorUseCase,
	}
}

// ListMine handles GET /communicator/my
// @Summary List my communicators
// @Description List the caller's communication boards, newest first
// @Tags communicator
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} communicator.ListResult
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /communicator/my [get]
func (h *CommunicatorHandler) ListMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	page, limit := paginationParams(c)

	result, err := h.communicatorUseCase.ListMine(c.Request.Context(), user.ID, page, limit)
	if err != nil {
		respondError(c, err, "failed to list communicators")
		return
	}

	c.JSON(http.StatusOK, result)
}

// deprecatedListResponse is the byemail envelope: the normal listing plus
// deprecation fields.
type deprecatedListResponse struct {
	*communicator.ListResult
	Deprecated bool   `json:"deprecated"`
	Message    string `json:"message"`
}

// ListByEmail handles GET /communicator/byemail/*email (deprecated)
// @Summary List communicators by email
// @Description Deprecated alias of /communicator/my; the email must belong to the caller
// @Tags communicator
// @Security BearerAuth
// @Produce json
// @Success 200 {object} deprecatedListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /communicator/byemail/{email} [get]
func (h *CommunicatorHandler) ListByEmail(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	email := emailFromPath(c.Param("email"))
	page, limit := paginationParams(c)

	result, err := h.communicatorUseCase.ListByEmail(c.Request.Context(), user, email, page, limit)
	if err != nil {
		respondError(c, err, "failed to list communicators")
		return
	}

	c.JSON(http.StatusOK, deprecatedListResponse{
		ListResult: result,
		Deprecated: true,
		Message:    communicator.DeprecationNotice,
	})
}

// Create handles POST /communicator
// @Summary Create communicator
// @Description Create a new communication board owned by the caller
// @Tags communicator
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body communicator.CreateCommunicatorRequest true "Communicator data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /communicator [post]
func (h *CommunicatorHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req communicator.CreateCommunicatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	profile, err := h.communicatorUseCase.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err, "failed to create communicator")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"communicator": profile})
}

// Update handles PUT /communicator/:id
// @Summary Update communicator
// @Description Rename a communication board owned by the caller
// @Tags communicator
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Communicator ID"
// @Param request body communicator.UpdateCommunicatorRequest true "Communicator data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /communicator/{id} [put]
func (h *CommunicatorHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid communicator id"})
		return
	}

	var req communicator.UpdateCommunicatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	profile, err := h.communicatorUseCase.Update(c.Request.Context(), user.ID, id, &req)
	if err != nil {
		respondError(c, err, "failed to update communicator")
		return
	}

	c.JSON(http.StatusOK, gin.H{"communicator": profile})
}

// emailFromPath reconstructs an email from the wildcard path segment. The
// address may itself contain '/'-unsafe characters, so each segment is
// decoded before rejoining.
func emailFromPath(raw string) string {
	raw = strings.TrimPrefix(raw, "/")
	segments := strings.Split(raw, "/")
	for i, segment := range segments {
		if decoded, err := url.PathUnescape(segment); err == nil {
			segments[i] = decoded
		}
	}
	return strings.Join(segments, "/")
}

func paginationParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}
