package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shoptalk/shoptalk-api/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	env := setupAPITestEnv(t)

	t.Run("creates account and returns token", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"name":     "Alice",
			"email":    "alice@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "Alice", resp.User.Name)
		require.Equal(t, "alice@example.com", resp.User.Email)
		require.NotEmpty(t, resp.Token)

		// The token works against a protected endpoint.
		w = env.request(t, http.MethodGet, "/api/auth/me", resp.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"name":     "Alice Again",
			"email":    "alice@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusConflict, w.Code)
		label, message := errorBody(t, w)
		require.Equal(t, "Email already in use", label)
		require.Equal(t, "This email is already registered to another user", message)
	})

	t.Run("short password", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"name":     "Bob",
			"email":    "bob@example.com",
			"password": "12345",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		_, message := errorBody(t, w)
		require.Equal(t, "Password must be at least 6 characters", message)
	})

	t.Run("malformed email", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"name":     "Bob",
			"email":    "invalid-email",
			"password": "password123",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		_, message := errorBody(t, w)
		require.Equal(t, "Invalid email format", message)
	})

	t.Run("short email", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"name":     "Bob",
			"email":    "a@b",
			"password": "password123",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		_, message := errorBody(t, w)
		require.Equal(t, "Email must be at least 5 characters", message)
	})
}

func TestSignIn(t *testing.T) {
	env := setupAPITestEnv(t)
	user := env.createUser(t, "Alice", "alice@example.com")

	t.Run("valid credentials", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/signin", "", map[string]string{
			"email":    "alice@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, user.ID, resp.User.ID)
		require.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/signin", "", map[string]string{
			"email":    "alice@example.com",
			"password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		_, message := errorBody(t, w)
		require.Equal(t, "Invalid email or password", message)
	})

	t.Run("unknown email", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/auth/signin", "", map[string]string{
			"email":    "ghost@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	env := setupAPITestEnv(t)

	t.Run("missing token", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/auth/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		label, message := errorBody(t, w)
		require.Equal(t, "Unauthorized", label)
		require.Equal(t, "Access token required", message)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/auth/me", "not-a-token", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		_, message := errorBody(t, w)
		require.Equal(t, "Invalid access token", message)
	})
}

func TestUpdateProfile(t *testing.T) {
	env := setupAPITestEnv(t)
	env.createUser(t, "Alice", "alice@example.com")
	bob := env.createUser(t, "Bob", "bob@example.com")
	bobToken := env.tokenFor(t, bob)

	t.Run("updates name", func(t *testing.T) {
		w := env.request(t, http.MethodPut, "/api/users/me", bobToken, map[string]string{"name": "Robert"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "Robert", resp.Name)
		require.Equal(t, "bob@example.com", resp.Email)
	})

	t.Run("malformed email", func(t *testing.T) {
		w := env.request(t, http.MethodPut, "/api/users/me", bobToken, map[string]string{"email": "not-an-address"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		_, message := errorBody(t, w)
		require.Equal(t, "Invalid email format", message)
	})

	t.Run("email held by another account", func(t *testing.T) {
		w := env.request(t, http.MethodPut, "/api/users/me", bobToken, map[string]string{"email": "alice@example.com"})
		require.Equal(t, http.StatusConflict, w.Code)
		label, message := errorBody(t, w)
		require.Equal(t, "Email already in use", label)
		require.Equal(t, "This email is already registered to another user", message)
	})
}
