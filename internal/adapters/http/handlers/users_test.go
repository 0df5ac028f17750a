package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/dto"
)

func TestUserHandler_Profile(t *testing.T) {
	h := newHarness(t)
	sid := h.speaker("Grace Hopper")

	first := h.quote(alice, dto.QuoteRequest{Content: "first", SpeakerIDs: []int64{sid}})
	second := h.quote(alice, dto.QuoteRequest{Content: "second", SpeakerIDs: []int64{sid}})
	h.quote(bob, dto.QuoteRequest{Content: "not alice's", SpeakerIDs: []int64{sid}})

	for _, v := range []struct {
		id       int64
		voteType string
	}{
		{first.ID, "upvote"},
		{second.ID, "downvote"},
	} {
		w := h.do(bob, http.MethodPost, fmt.Sprintf("/api/v1/quotes/%d/votes", v.id), dto.CastVoteRequest{VoteType: v.voteType})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := h.do(alice, http.MethodPost, fmt.Sprintf("/api/v1/quotes/%d/votes", first.ID), dto.CastVoteRequest{VoteType: "upvote"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = h.do(bob, http.MethodGet, "/api/v1/users/alice", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	p := decode[dto.ProfileResponse](t, w)
	assert.Equal(t, "alice", p.ID)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, dto.UserStatsResponse{QuotesCount: 2, TotalUpvotes: 2, TotalDownvotes: 1, NetScore: 1}, p.Stats)

	w = h.do(alice, http.MethodGet, "/api/v1/users/me", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, p, decode[dto.ProfileResponse](t, w))
}

func TestUserHandler_Profile_UnknownUser(t *testing.T) {
	h := newHarness(t)

	w := h.do(alice, http.MethodGet, "/api/v1/users/nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeNotFound, errorCode(t, w))

	w = h.do(alice, http.MethodGet, "/api/v1/users/nobody/quotes", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_Quotes(t *testing.T) {
	h := newHarness(t)
	sid := h.speaker("Grace Hopper")

	for i := range 3 {
		h.quote(alice, dto.QuoteRequest{Content: fmt.Sprintf("alice %d", i), SpeakerIDs: []int64{sid}})
	}

	h.quote(bob, dto.QuoteRequest{Content: "bob", SpeakerIDs: []int64{sid}})

	w := h.do(bob, http.MethodGet, "/api/v1/users/alice/quotes?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	page1 := decode[[]dto.QuoteResponse](t, w)
	require.Len(t, page1, 2)
	assert.Equal(t, "alice 2", page1[0].Content)
	assert.Equal(t, "alice 1", page1[1].Content)

	w = h.do(bob, http.MethodGet, "/api/v1/users/alice/quotes?limit=2&page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	page2 := decode[[]dto.QuoteResponse](t, w)
	require.Len(t, page2, 1)
	assert.Equal(t, "alice 0", page2[0].Content)
	assert.Equal(t, "alice", page2[0].SubmittedByID)
}

func TestUserHandler_Quotes_Validation(t *testing.T) {
	h := newHarness(t)
	h.quote(alice, dto.QuoteRequest{Content: "registered", SpeakerIDs: []int64{h.speaker("Grace Hopper")}})

	for _, path := range []string{
		"/api/v1/users/alice/quotes?limit=0",
		"/api/v1/users/alice/quotes?limit=101",
		"/api/v1/users/alice/quotes?page=0",
	} {
		w := h.do(alice, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, dto.ErrorCodeValidation, errorCode(t, w), path)
	}
}
