package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/shoptalk/shoptalk-api/internal/dto"
	"github.com/shoptalk/shoptalk-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestMessageSend(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.createUser(t, "Alice", "alice@example.com")
	member := env.createUser(t, "Bob", "bob@example.com")
	observer := env.createUser(t, "Carol", "carol@example.com")
	adminToken := env.tokenFor(t, admin)
	memberToken := env.tokenFor(t, member)
	observerToken := env.tokenFor(t, observer)

	channelID := env.createChannel(t, adminToken, "support")
	env.addMember(t, channelID, member.ID, models.RoleMember)
	env.addMember(t, channelID, observer.ID, models.RoleObserver)
	messagesURL := "/api/channels/" + strconv.FormatUint(channelID, 10) + "/messages"

	t.Run("member sends", func(t *testing.T) {
		w := env.request(t, http.MethodPost, messagesURL, memberToken, map[string]string{"content": "hello"})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp dto.MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "hello", resp.Content)
		require.Equal(t, channelID, resp.ChannelID)
		require.NotNil(t, resp.Sender)
		require.Equal(t, member.ID, resp.Sender.ID)
	})

	t.Run("observer can read but not send", func(t *testing.T) {
		w := env.request(t, http.MethodGet, messagesURL, observerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.request(t, http.MethodPost, messagesURL, observerToken, map[string]string{"content": "hello"})
		require.Equal(t, http.StatusForbidden, w.Code)
		label, message := errorBody(t, w)
		require.Equal(t, "Insufficient permissions", label)
		require.Equal(t, "User does not have permission to send messages", message)
	})

	t.Run("missing content", func(t *testing.T) {
		w := env.request(t, http.MethodPost, messagesURL, memberToken, map[string]interface{}{})
		require.Equal(t, http.StatusBadRequest, w.Code)
		_, message := errorBody(t, w)
		require.Equal(t, "Message content is required", message)
	})

	t.Run("whitespace content", func(t *testing.T) {
		w := env.request(t, http.MethodPost, messagesURL, memberToken, map[string]string{"content": "   "})
		require.Equal(t, http.StatusBadRequest, w.Code)
		_, message := errorBody(t, w)
		require.Equal(t, "Message content cannot be empty", message)
	})

	t.Run("oversized content", func(t *testing.T) {
		long := make([]byte, 1001)
		for i := range long {
			long[i] = 'a'
		}
		w := env.request(t, http.MethodPost, messagesURL, memberToken, map[string]string{"content": string(long)})
		require.Equal(t, http.StatusBadRequest, w.Code)
		_, message := errorBody(t, w)
		require.Equal(t, "Message content must not exceed 1000 characters", message)
	})

	t.Run("multibyte content counts characters, not bytes", func(t *testing.T) {
		content := strings.Repeat("é", 1000)
		w := env.request(t, http.MethodPost, messagesURL, memberToken, map[string]string{"content": content})
		require.Equal(t, http.StatusCreated, w.Code)

		w = env.request(t, http.MethodPost, messagesURL, memberToken, map[string]string{"content": content + "é"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		_, message := errorBody(t, w)
		require.Equal(t, "Message content must not exceed 1000 characters", message)
	})

	t.Run("non-member cannot send", func(t *testing.T) {
		outsider := env.createUser(t, "Oscar", "oscar@example.com")
		w := env.request(t, http.MethodPost, messagesURL, env.tokenFor(t, outsider), map[string]string{"content": "hi"})
		require.Equal(t, http.StatusForbidden, w.Code)
		label, _ := errorBody(t, w)
		require.Equal(t, "Access denied", label)
	})
}

func TestMessageList(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.createUser(t, "Alice", "alice@example.com")
	adminToken := env.tokenFor(t, admin)

	channelID := env.createChannel(t, adminToken, "support")
	messagesURL := "/api/channels/" + strconv.FormatUint(channelID, 10) + "/messages"

	for i := 1; i <= 5; i++ {
		msg := &models.Message{ChannelID: channelID, UserID: &admin.ID, Content: fmt.Sprintf("message %d", i)}
		require.NoError(t, env.db.Create(msg).Error)
	}

	t.Run("newest first", func(t *testing.T) {
		w := env.request(t, http.MethodGet, messagesURL, adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.MessageListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Messages, 5)
		require.False(t, resp.HasMore)
		require.Equal(t, "message 5", resp.Messages[0].Content)
		require.Equal(t, "message 1", resp.Messages[4].Content)
	})

	t.Run("limit pages with hasMore", func(t *testing.T) {
		w := env.request(t, http.MethodGet, messagesURL+"?limit=2", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.MessageListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Messages, 2)
		require.True(t, resp.HasMore)
		require.Equal(t, "message 5", resp.Messages[0].Content)
	})

	t.Run("before cursor pages into history", func(t *testing.T) {
		w := env.request(t, http.MethodGet, messagesURL+"?limit=2", adminToken, nil)
		var first dto.MessageListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
		oldest := first.Messages[len(first.Messages)-1].ID

		w = env.request(t, http.MethodGet, fmt.Sprintf("%s?limit=2&before=%d", messagesURL, oldest), adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var second dto.MessageListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
		require.Len(t, second.Messages, 2)
		for _, m := range second.Messages {
			require.Less(t, m.ID, oldest)
		}
	})

	t.Run("limit above maximum is rejected", func(t *testing.T) {
		w := env.request(t, http.MethodGet, messagesURL+"?limit=150", adminToken, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		label, message := errorBody(t, w)
		require.Equal(t, "Validation error", label)
		require.Equal(t, "Limit must not exceed 100", message)
	})

	t.Run("limit above maximum is rejected for non-members", func(t *testing.T) {
		outsider := env.createUser(t, "Oscar", "oscar@example.com")
		w := env.request(t, http.MethodGet, messagesURL+"?limit=150", env.tokenFor(t, outsider), nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		_, message := errorBody(t, w)
		require.Equal(t, "Limit must not exceed 100", message)

		// A valid limit still hits the membership gate.
		w = env.request(t, http.MethodGet, messagesURL, env.tokenFor(t, outsider), nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("limit above maximum is rejected for unknown channels", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/channels/9999/messages?limit=150", adminToken, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		_, message := errorBody(t, w)
		require.Equal(t, "Limit must not exceed 100", message)
	})

	t.Run("non-positive limit is rejected", func(t *testing.T) {
		w := env.request(t, http.MethodGet, messagesURL+"?limit=0", adminToken, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		_, message := errorBody(t, w)
		require.Equal(t, "Limit must be a positive integer", message)
	})

	t.Run("unknown channel is 404", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/channels/9999/messages", adminToken, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMessagesSurviveMemberRemoval(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.createUser(t, "Alice", "alice@example.com")
	member := env.createUser(t, "Bob", "bob@example.com")
	adminToken := env.tokenFor(t, admin)
	memberToken := env.tokenFor(t, member)

	channelID := env.createChannel(t, adminToken, "support")
	env.addMember(t, channelID, member.ID, models.RoleMember)
	base := "/api/channels/" + strconv.FormatUint(channelID, 10)

	w := env.request(t, http.MethodPost, base+"/messages", memberToken, map[string]string{"content": "still here"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodDelete, base+"/members/"+strconv.FormatUint(member.ID, 10), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The author lost access but the message stays visible to members.
	w = env.request(t, http.MethodGet, base+"/messages", memberToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(t, http.MethodGet, base+"/messages", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	require.Equal(t, "still here", resp.Messages[0].Content)
	require.Equal(t, member.ID, resp.Messages[0].Sender.ID)
}
