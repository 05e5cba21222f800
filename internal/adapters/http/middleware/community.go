package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/corgi-bot/internal/adapters/http/dto"
	"github.com/jsamuelsen/corgi-bot/internal/platform/logging"
)

const (
	// ParamCommunityID is the route parameter naming the community.
	ParamCommunityID = "communityID"

	// ContextKeyCommunityID is the gin context key for the parsed community ID.
	ContextKeyCommunityID = "community_id"
)

// Community parses the :communityID route parameter. Requests with a missing,
// non-numeric or non-positive id are rejected with 400. The id is tagged on
// the request logger.
func Community() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param(ParamCommunityID), 10, 64)
		if err != nil || id <= 0 {
			resp := dto.NewErrorResponseWithDetails(dto.ErrorCodeValidation, "invalid community id",
				map[string]string{ParamCommunityID: "must be a positive integer"})
			c.AbortWithStatusJSON(dto.HTTPStatusFromCode(dto.ErrorCodeValidation), resp.WithTraceID(dto.GetTraceID(c)))

			return
		}

		c.Set(ContextKeyCommunityID, id)
		c.Request = c.Request.WithContext(logging.WithCommunity(c.Request.Context(), id))

		c.Next()
	}
}

// GetCommunityID returns the community parsed by Community, or 0.
func GetCommunityID(c *gin.Context) int64 {
	return c.GetInt64(ContextKeyCommunityID)
}
