package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/corgi-bot/internal/adapters/http/dto"
	"github.com/jsamuelsen/corgi-bot/internal/adapters/http/middleware"
	"github.com/jsamuelsen/corgi-bot/internal/app"
	"github.com/jsamuelsen/corgi-bot/internal/domain"
)

// PersonalityHandler handles mentions, actions and affection queries.
type PersonalityHandler struct {
	service *app.PersonalityService
}

// NewPersonalityHandler creates a new personality handler.
func NewPersonalityHandler(service *app.PersonalityService) *PersonalityHandler {
	return &PersonalityHandler{service: service}
}

// Mention handles POST /api/v1/communities/:communityID/mentions
//
// @Summary React to a message that mentions the corgi
// @Tags personality
// @Accept json
// @Produce json
// @Param communityID path int true "Community ID"
// @Param body body dto.MentionRequest true "Mention"
// @Success 200 {object} dto.MentionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/communities/{communityID}/mentions [post]
func (h *PersonalityHandler) Mention(c *gin.Context) {
	var req dto.MentionRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	res, err := h.service.HandleMention(c.Request.Context(),
		middleware.GetCommunityID(c), req.SubjectID, req.Text, req.MentionCount)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	resp := dto.MentionResponse{
		Text:    res.Text,
		Trigger: res.Trigger.String(),
		Delta:   res.Delta,
	}
	if res.Applied {
		resp.Score = &res.Score
	}

	c.JSON(http.StatusOK, resp)
}

// Message handles POST /api/v1/communities/:communityID/messages
// It answers 204 when the corgi stays quiet.
//
// @Summary Offer an ordinary message for an unprompted reply
// @Tags personality
// @Accept json
// @Produce json
// @Param communityID path int true "Community ID"
// @Param body body dto.MessageRequest true "Message"
// @Success 200 {object} dto.MessageResponse
// @Success 204
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/communities/{communityID}/messages [post]
func (h *PersonalityHandler) Message(c *gin.Context) {
	var req dto.MessageRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	res, err := h.service.Ambient(c.Request.Context(), middleware.GetCommunityID(c), req.SubjectID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if !res.Fired {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Text: res.Text})
}

// Action handles POST /api/v1/communities/:communityID/actions/:kind
//
// @Summary Pet, treat, toss a ball to or rub the belly of the corgi
// @Tags personality
// @Accept json
// @Produce json
// @Param communityID path int true "Community ID"
// @Param kind path string true "pet, treat, ball or belly_rub"
// @Param body body dto.ActionRequest true "Action"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/communities/{communityID}/actions/{kind} [post]
func (h *PersonalityHandler) Action(c *gin.Context) {
	kind, err := domain.ParseActionKind(c.Param("kind"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var req dto.ActionRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	var sentAt time.Time
	if req.SentAt != nil {
		sentAt = *req.SentAt
	}

	res, err := h.service.RecordAction(c.Request.Context(),
		middleware.GetCommunityID(c), req.SubjectID, kind, req.Magnitude, sentAt)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ActionResponse{
		Text:  res.Text,
		Kind:  string(res.Kind),
		Tone:  res.Tone.String(),
		Delta: res.Delta,
		Score: res.Score,
	})
}

// Affection handles GET /api/v1/communities/:communityID/affection/:subjectID
//
// @Summary Report how much the corgi loves someone
// @Tags personality
// @Produce json
// @Param communityID path int true "Community ID"
// @Param subjectID path int true "Subject ID"
// @Param mention query string false "How to address the subject"
// @Success 200 {object} dto.AffectionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/communities/{communityID}/affection/{subjectID} [get]
func (h *PersonalityHandler) Affection(c *gin.Context) {
	subjectID, err := strconv.ParseInt(c.Param("subjectID"), 10, 64)
	if err != nil || subjectID <= 0 {
		dto.HandleError(c, domain.NewValidationErrorWithValue("subjectID", "must be a positive integer", c.Param("subjectID")))
		return
	}

	var q dto.AffectionQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	res, err := h.service.Score(c.Request.Context(), middleware.GetCommunityID(c), subjectID, q.Mention)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AffectionResponse{
		Text:      res.Text,
		SubjectID: res.SubjectID,
		Score:     res.Score,
		Max:       res.Max,
		LovedMost: res.LovedMost,
	})
}

// Leaderboard handles GET /api/v1/communities/:communityID/leaderboard
//
// @Summary List the most loved members
// @Tags personality
// @Produce json
// @Param communityID path int true "Community ID"
// @Param n query int false "Number of entries, 0 for the default"
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/communities/{communityID}/leaderboard [get]
func (h *PersonalityHandler) Leaderboard(c *gin.Context) {
	var q dto.LeaderboardQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	res, err := h.service.Leaderboard(c.Request.Context(), middleware.GetCommunityID(c), q.N)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LeaderboardResponse{
		Text:    res.Text,
		Size:    res.Size,
		Entries: dto.NewLeaderboardEntries(res.Entries),
	})
}

// Apologize handles POST /api/v1/communities/:communityID/apologies
//
// @Summary Ask the corgi for forgiveness
// @Tags personality
// @Accept json
// @Produce json
// @Param communityID path int true "Community ID"
// @Param body body dto.ApologyRequest true "Apology"
// @Success 200 {object} dto.ApologyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/communities/{communityID}/apologies [post]
func (h *PersonalityHandler) Apologize(c *gin.Context) {
	var req dto.ApologyRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	res, err := h.service.Apologize(c.Request.Context(), middleware.GetCommunityID(c), req.SubjectID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApologyResponse{Text: res.Text, Outcome: res.Outcome.String()})
}

// Speak handles GET /api/v1/speak
//
// @Summary Bark
// @Tags fun
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /api/v1/speak [get]
func (h *PersonalityHandler) Speak(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Text: h.service.Speak()})
}

// Hello handles GET /api/v1/hello
//
// @Summary Greet someone
// @Tags fun
// @Produce json
// @Param mention query string true "Who to greet"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/hello [get]
func (h *PersonalityHandler) Hello(c *gin.Context) {
	var q dto.HelloQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Text: h.service.Hello(q.Mention)})
}

// Roll handles POST /api/v1/roll
//
// @Summary Roll dice
// @Tags fun
// @Accept json
// @Produce json
// @Param body body dto.RollRequest true "Dice"
// @Success 200 {object} dto.RollResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/roll [post]
func (h *PersonalityHandler) Roll(c *gin.Context) {
	var req dto.RollRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	res, err := h.service.Roll(req.Dice)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RollResponse{
		Text:  res.Text,
		Dice:  res.Dice.String(),
		Rolls: res.Rolls,
		Total: res.Total,
	})
}

// RegisterCommunityRoutes registers the community-scoped routes. rg must
// carry the :communityID parameter and the Community middleware.
func (h *PersonalityHandler) RegisterCommunityRoutes(rg *gin.RouterGroup) {
	rg.POST("/mentions", h.Mention)
	rg.POST("/messages", h.Message)
	rg.POST("/actions/:kind", h.Action)
	rg.GET("/affection/:subjectID", h.Affection)
	rg.GET("/leaderboard", h.Leaderboard)
	rg.POST("/apologies", h.Apologize)
}

// RegisterRoutes registers the routes that need no community.
func (h *PersonalityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/speak", h.Speak)
	rg.GET("/hello", h.Hello)
	rg.POST("/roll", h.Roll)
}
