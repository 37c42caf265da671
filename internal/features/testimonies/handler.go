package testimonies

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/safeland/safetravel-api/internal/pkg/response"
)

// Store is the document-store surface this feature uses. *Repository
// satisfies it.
type Store interface {
	Create(ctx context.Context, testimony *Testimony) error
	List(ctx context.Context) ([]Testimony, error)
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Create godoc
// @Summary Submit a testimony
// @Description Store a travel-safety testimony authored by the authenticated user
// @Tags testimonies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTestimonyRequest true "Testimony fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /testimonies [post]
func (h *Handler) Create(c *gin.Context) {
	// The author is always the verified identity, never a body field
	uid := c.GetString("uid")

	var req CreateTestimonyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if strings.TrimSpace(req.CountryVisited) == "" {
		response.BadRequest(c, "countryVisited is required", "VALIDATION_FAILED")
		return
	}
	if strings.TrimSpace(req.Temoignage) == "" {
		response.BadRequest(c, "temoignage is required", "VALIDATION_FAILED")
		return
	}

	testimony := req.Testimony(uid)

	if err := h.store.Create(c.Request.Context(), testimony); err != nil {
		log.Printf("testimonies: create for %s: %v", uid, err)
		response.InternalServerError(c, "Failed to save testimony", "DATABASE_ERROR")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      testimony.ID.Hex(),
		"message": "Testimony saved",
		"data":    testimony,
	})
}

// List godoc
// @Summary List testimonies
// @Description List testimonies, newest first, optionally filtered by country
// @Tags testimonies
// @Produce json
// @Param country query string false "Country name, matched exactly after case/whitespace normalization"
// @Success 200 {array} Testimony
// @Failure 500 {object} response.ErrorResponse
// @Router /testimonies [get]
func (h *Handler) List(c *gin.Context) {
	results, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Printf("testimonies: list: %v", err)
		response.InternalServerError(c, "Failed to load testimonies", "DATABASE_ERROR")
		return
	}

	if country := c.Query("country"); country != "" {
		results = filterByCountry(results, country)
	}

	sortByCreatedAtDesc(results)

	c.JSON(http.StatusOK, results)
}
