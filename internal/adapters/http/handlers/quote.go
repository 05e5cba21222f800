package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/corgi-bot/internal/adapters/http/dto"
	"github.com/jsamuelsen/corgi-bot/internal/adapters/http/middleware"
	"github.com/jsamuelsen/corgi-bot/internal/app"
)

// QuoteHandler handles the quote endpoints of a community.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// StoreQuote handles POST /api/v1/communities/:communityID/quotes
//
// @Summary Remember a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param communityID path int true "Community ID"
// @Param body body dto.QuoteRequest true "Quote"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/communities/{communityID}/quotes [post]
func (h *QuoteHandler) StoreQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	quote, text, err := h.service.Store(c.Request.Context(), middleware.GetCommunityID(c), req.Text, req.Author)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.QuoteResponse{Text: text, Quote: dto.NewQuoteBody(quote)})
}

// RandomQuote handles GET /api/v1/communities/:communityID/quotes/random
// A community with no quotes still gets 200 and a line saying so.
//
// @Summary Recall a random quote
// @Tags quotes
// @Produce json
// @Param communityID path int true "Community ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/communities/{communityID}/quotes/random [get]
func (h *QuoteHandler) RandomQuote(c *gin.Context) {
	quote, text, err := h.service.RecallMessage(c.Request.Context(), middleware.GetCommunityID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{Text: text, Quote: dto.NewQuoteBody(quote)})
}

// RegisterQuoteRoutes registers quote routes on a community group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.POST("", h.StoreQuote)
	quotes.GET("/random", h.RandomQuote)
}
