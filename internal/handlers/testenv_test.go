package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shoptalk/shoptalk-api/internal/config"
	"github.com/shoptalk/shoptalk-api/internal/models"
	"github.com/shoptalk/shoptalk-api/internal/repository"
	"github.com/shoptalk/shoptalk-api/internal/router"
	"github.com/shoptalk/shoptalk-api/internal/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

type apiTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
	auth   *services.AuthService
}

// setupAPITestEnv builds the full HTTP surface against an in-memory
// database so tests exercise the real middleware chain.
func setupAPITestEnv(t *testing.T) apiTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserAccount{},
		&models.Channel{},
		&models.ChannelMember{},
		&models.Message{},
		&models.Attachment{},
		&models.Category{},
		&models.Brand{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductOption{},
		&models.Review{},
		&models.Wishlist{},
		&models.Comparison{},
	)
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: testJWTSecret, GinMode: gin.TestMode}
	r := router.New(db, cfg)

	userRepo := repository.NewUserRepository(db)
	auth := services.NewAuthService(userRepo, testJWTSecret)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return apiTestEnv{db: db, router: r, auth: auth}
}

func (env apiTestEnv) createUser(t *testing.T, name, email string) *models.UserAccount {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.UserAccount{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env apiTestEnv) tokenFor(t *testing.T, user *models.UserAccount) string {
	t.Helper()
	token, err := env.auth.GenerateToken(user)
	require.NoError(t, err)
	return token
}

// request performs an HTTP request against the test router. A non-empty
// token is sent as a bearer Authorization header.
func (env apiTestEnv) request(t *testing.T, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// errorBody decodes the uniform {error, message} body.
func errorBody(t *testing.T, w *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error, body.Message
}

func (env apiTestEnv) createChannel(t *testing.T, token, name string) uint64 {
	t.Helper()
	w := env.request(t, http.MethodPost, "/api/channels", token, map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID uint64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func (env apiTestEnv) addMember(t *testing.T, channelID, userID uint64, role models.Role) {
	t.Helper()
	member := &models.ChannelMember{ChannelID: channelID, UserID: userID, Role: role}
	require.NoError(t, env.db.Create(member).Error)
}
