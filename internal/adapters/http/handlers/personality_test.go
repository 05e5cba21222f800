package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/corgi-bot/internal/adapters/http/dto"
	"github.com/jsamuelsen/corgi-bot/internal/domain"
	"github.com/jsamuelsen/corgi-bot/internal/mocks"
	"github.com/jsamuelsen/corgi-bot/internal/responses"
)

const communityPath = "/api/v1/communities/7"

func TestPersonalityHandler_Mention(t *testing.T) {
	t.Run("scored trigger", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().ApplyDelta(mock.Anything, subject, community, domain.GoodBoyStatementDelta, fixedNow).
			Return(int64(12), nil)

		w := doJSON(t, newTestRouter(t, testDeps{store: store}), http.MethodPost, communityPath+"/mentions",
			dto.MentionRequest{SubjectID: subject, Text: "you are a good boy", MentionCount: 1})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decode[dto.MentionResponse](t, w)
		assert.Equal(t, "good_boy_statement", resp.Trigger)
		assert.Equal(t, domain.GoodBoyStatementDelta, resp.Delta)
		require.NotNil(t, resp.Score)
		assert.Equal(t, int64(12), *resp.Score)
		assert.Contains(t, responses.SetFor(domain.TriggerGoodBoyStatement), resp.Text)
	})

	t.Run("unscored trigger leaves the store alone", func(t *testing.T) {
		w := doJSON(t, newTestRouter(t, testDeps{}), http.MethodPost, communityPath+"/mentions",
			dto.MentionRequest{SubjectID: subject, Text: "good boy?", MentionCount: 1})

		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.MentionResponse](t, w)
		assert.Equal(t, "good_boy_question", resp.Trigger)
		assert.Nil(t, resp.Score)
		assert.NotContains(t, w.Body.String(), `"score"`)
	})

	t.Run("comparison with someone else", func(t *testing.T) {
		w := doJSON(t, newTestRouter(t, testDeps{}), http.MethodPost, communityPath+"/mentions",
			dto.MentionRequest{SubjectID: subject, Text: "bad dog!", MentionCount: 2})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "multi_mention", decode[dto.MentionResponse](t, w).Trigger)
	})

	t.Run("missing subject", func(t *testing.T) {
		w := doJSON(t, newTestRouter(t, testDeps{}), http.MethodPost, communityPath+"/mentions",
			dto.MentionRequest{Text: "good boy"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Error.Details, "subjectId")
	})

	t.Run("store unavailable", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().ApplyDelta(mock.Anything, subject, community, domain.BadDogDelta, fixedNow).
			Return(int64(0), domain.NewUnavailableError("postgres", "connection refused"))

		w := doJSON(t, newTestRouter(t, testDeps{store: store}), http.MethodPost, communityPath+"/mentions",
			dto.MentionRequest{SubjectID: subject, Text: "bad dog", MentionCount: 1})

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestPersonalityHandler_Message(t *testing.T) {
	t.Run("quiet corgi", func(t *testing.T) {
		w := doJSON(t, newTestRouter(t, testDeps{ambient: &domain.AmbientParams{Probability: 0, Divisor: 10, Offset: 7}}),
			http.MethodPost, communityPath+"/messages", dto.MessageRequest{SubjectID: subject})

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("corgi pipes up", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().GetScore(mock.Anything, subject, community).Return(int64(10_000), nil)
		store.EXPECT().MaxScore(mock.Anything, community).Return(int64(10_000), nil)

		w := doJSON(t, newTestRouter(t, testDeps{
			store:   store,
			ambient: &domain.AmbientParams{Probability: 1, Divisor: 10, Offset: 7},
		}), http.MethodPost, communityPath+"/messages", dto.MessageRequest{SubjectID: subject})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, responses.Weird, decode[dto.MessageResponse](t, w).Text)
	})
}

func TestPersonalityHandler_Action(t *testing.T) {
	t.Run("pets", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().ApplyDelta(mock.Anything, subject, community, int64(9), fixedNow).Return(int64(19), nil)

		w := doJSON(t, newTestRouter(t, testDeps{store: store}), http.MethodPost, communityPath+"/actions/pet",
			dto.ActionRequest{SubjectID: subject, Magnitude: 3})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, dto.ActionResponse{
			Text:  responses.PetPositive,
			Kind:  "pet",
			Tone:  "positive",
			Delta: 9,
			Score: 19,
		}, decode[dto.ActionResponse](t, w))
	})

	t.Run("kind is case insensitive", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().ApplyDelta(mock.Anything, subject, community, domain.BellyRubDelta, fixedNow).Return(int64(7), nil)

		w := doJSON(t, newTestRouter(t, testDeps{store: store}), http.MethodPost, communityPath+"/actions/BELLY_RUB",
			dto.ActionRequest{SubjectID: subject})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, responses.BellyRub, decode[dto.ActionResponse](t, w).Text)
	})

	t.Run("ball toss reports fetch time", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().ApplyDelta(mock.Anything, subject, community, domain.BallTossDelta, fixedNow).Return(int64(1), nil)

		sentAt := fixedNow.Add(-1500 * time.Millisecond)

		w := doJSON(t, newTestRouter(t, testDeps{store: store}), http.MethodPost, communityPath+"/actions/ball",
			dto.ActionRequest{SubjectID: subject, SentAt: &sentAt})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "I BROUGHT THE BALL BACK IN 1500MS! DO I GET A TREAT?", decode[dto.ActionResponse](t, w).Text)
	})

	t.Run("unknown kind", func(t *testing.T) {
		w := doJSON(t, newTestRouter(t, testDeps{}), http.MethodPost, communityPath+"/actions/bite",
			dto.ActionRequest{SubjectID: subject})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Error.Details, "kind")
	})

	t.Run("magnitude out of range", func(t *testing.T) {
		w := doJSON(t, newTestRouter(t, testDeps{}), http.MethodPost, communityPath+"/actions/treat",
			dto.ActionRequest{SubjectID: subject, Magnitude: domain.MaxMagnitude + 1})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Error.Details, "magnitude")
	})
}

func TestPersonalityHandler_Affection(t *testing.T) {
	t.Run("loved most", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().GetScore(mock.Anything, subject, community).Return(int64(30), nil)
		store.EXPECT().MaxScore(mock.Anything, community).Return(int64(30), nil)

		w := doJSON(t, newTestRouter(t, testDeps{store: store}), http.MethodGet, communityPath+"/affection/42", nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.AffectionResponse](t, w)
		assert.True(t, resp.LovedMost)
		assert.Equal(t, responses.AffectionReport("<@42>", 30, true), resp.Text)
	})

	t.Run("custom mention", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().GetScore(mock.Anything, subject, community).Return(int64(-3), nil)
		store.EXPECT().MaxScore(mock.Anything, community).Return(int64(30), nil)

		w := doJSON(t, newTestRouter(t, testDeps{store: store}), http.MethodGet,
			communityPath+"/affection/42?mention=alice", nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.AffectionResponse](t, w)
		assert.False(t, resp.LovedMost)
		assert.Equal(t, "alice I LOVE YOU -3 TIMES MORE THAN PETS!!!!!!", resp.Text)
	})

	t.Run("invalid subject", func(t *testing.T) {
		w := doJSON(t, newTestRouter(t, testDeps{}), http.MethodGet, communityPath+"/affection/everyone", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Error.Details, "subjectID")
	})
}

func TestPersonalityHandler_Leaderboard(t *testing.T) {
	t.Run("explicit size", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().TopScores(mock.Anything, community, 2).Return([]domain.ScoreEntry{
			{SubjectID: 9, Score: 40},
			{SubjectID: 2, Score: 12},
		}, nil)

		w := doJSON(t, newTestRouter(t, testDeps{store: store}), http.MethodGet, communityPath+"/leaderboard?n=2", nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.LeaderboardResponse](t, w)
		assert.Equal(t, 2, resp.Size)
		assert.Equal(t, "Top 2 most loved people... BY ME!!!\n<@9> : 40\n<@2> : 12", resp.Text)
		assert.Equal(t, []dto.LeaderboardEntry{
			{Rank: 1, SubjectID: 9, Score: 40},
			{Rank: 2, SubjectID: 2, Score: 12},
		}, resp.Entries)
	})

	t.Run("default size on empty community", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().TopScores(mock.Anything, community, 10).Return(nil, nil)

		w := doJSON(t, newTestRouter(t, testDeps{store: store}), http.MethodGet, communityPath+"/leaderboard", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"entries":[]`)
	})

	t.Run("negative size", func(t *testing.T) {
		w := doJSON(t, newTestRouter(t, testDeps{}), http.MethodGet, communityPath+"/leaderboard?n=-1", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPersonalityHandler_Apologize(t *testing.T) {
	t.Run("nothing to forgive", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().GetScore(mock.Anything, subject, community).Return(int64(5), nil)

		w := doJSON(t, newTestRouter(t, testDeps{store: store}), http.MethodPost, communityPath+"/apologies",
			dto.ApologyRequest{SubjectID: subject})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, dto.ApologyResponse{Text: responses.ApologyAlreadyFine, Outcome: "already_fine"},
			decode[dto.ApologyResponse](t, w))
	})

	t.Run("forgiven resets the score", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().GetScore(mock.Anything, subject, community).Return(int64(-4), nil)
		store.EXPECT().MaxScore(mock.Anything, community).Return(int64(100), nil)
		store.EXPECT().ResetScore(mock.Anything, subject, community, fixedNow).Return(nil)

		w := doJSON(t, newTestRouter(t, testDeps{store: store, rng: stubRand{float: 0}}),
			http.MethodPost, communityPath+"/apologies", dto.ApologyRequest{SubjectID: subject})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, responses.ApologyForgiven, decode[dto.ApologyResponse](t, w).Text)
	})

	t.Run("still mad", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().GetScore(mock.Anything, subject, community).Return(int64(-4), nil)
		store.EXPECT().MaxScore(mock.Anything, community).Return(int64(100), nil)

		w := doJSON(t, newTestRouter(t, testDeps{store: store, rng: stubRand{float: 0.5}}),
			http.MethodPost, communityPath+"/apologies", dto.ApologyRequest{SubjectID: subject})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, responses.ApologyStillMad, decode[dto.ApologyResponse](t, w).Text)
	})
}

func TestPersonalityHandler_Fun(t *testing.T) {
	router := newTestRouter(t, testDeps{})

	t.Run("speak", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/speak", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, responses.Speak, decode[dto.MessageResponse](t, w).Text)
	})

	t.Run("hello", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/hello?mention=%3C%405%3E", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, responses.Hello("<@5>"), decode[dto.MessageResponse](t, w).Text)
	})

	t.Run("hello needs a mention", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/hello", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("roll", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/roll", dto.RollRequest{Dice: "2d6"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, dto.RollResponse{
			Text:  "You rolled a 2! (Individual rolls: 1, 1)",
			Dice:  "2d6",
			Rolls: []int{1, 1},
			Total: 2,
		}, decode[dto.RollResponse](t, w))
	})

	t.Run("bad dice", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/roll", dto.RollRequest{Dice: "fish"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Error.Details, "dice")
	})
}
