package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"placehub/internal/database"
	"placehub/internal/domain"
	"placehub/internal/middleware"
	"placehub/internal/modules/catalog"
	"placehub/internal/modules/events"
	"placehub/internal/modules/favorites"
	"placehub/internal/modules/location"
	"placehub/internal/modules/moderation"
	"placehub/internal/modules/review"
	jwtsvc "placehub/internal/pkg/jwt"
	"placehub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
	jwt    *jwtsvc.Service
}

type TestResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorDetail    `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db))

	subRepo := repository.NewSubmissionRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)
	hub := events.NewHub()
	t.Cleanup(hub.Close)

	moderationHandler := moderation.NewHandler(moderation.NewService(subRepo, hub), nil)
	catalogHandler := catalog.NewHandler(catalog.NewService(placeRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, placeRepo))
	favoritesHandler := favorites.NewHandler(favoriteRepo, placeRepo)
	locationHandler := location.NewHandler(location.NewSessions(nil, time.Second))

	r := gin.New()
	v1 := r.Group("/api/v1")

	public := v1.Group("/")
	catalogHandler.RegisterRoutes(public)
	reviewHandler.RegisterRoutes(public, nil)

	optional := v1.Group("/")
	optional.Use(middleware.OptionalAuth(j))
	favoritesHandler.RegisterRoutes(optional)
	locationHandler.RegisterRoutes(optional)

	protected := v1.Group("/")
	protected.Use(middleware.RequireAuth(j))
	moderationHandler.RegisterRoutes(protected, nil)
	reviewHandler.RegisterRoutes(nil, protected)

	moderator := v1.Group("/")
	moderator.Use(middleware.RequireAuth(j), middleware.ModeratorOnly())
	moderationHandler.RegisterRoutes(nil, moderator)

	return &E2ETestSuite{router: r, db: db, jwt: j}
}

func (s *E2ETestSuite) token(t *testing.T, userID, name, role string) string {
	t.Helper()
	token, err := s.jwt.GenerateToken(userID, name, role)
	require.NoError(t, err)
	return token
}

func (s *E2ETestSuite) request(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w, resp
}

func (s *E2ETestSuite) submitPlace(t *testing.T, token, name string) string {
	t.Helper()

	w, resp := s.request(t, http.MethodPost, "/api/v1/submissions", token, gin.H{
		"name":     name,
		"category": "Cafe",
		"address":  "Cra 14 #18-20",
		"lat":      4.5351,
		"lon":      -75.679,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var sub struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &sub))
	require.Equal(t, "pending", sub.Status)
	return sub.ID
}

func (s *E2ETestSuite) approve(t *testing.T, modToken, subID string) string {
	t.Helper()

	w, resp := s.request(t, http.MethodPost, "/api/v1/moderation/"+subID+"/approve", modToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var place struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &place))
	return place.ID
}

func TestSubmittedPlaceIsPendingAndInvisible(t *testing.T) {
	s := setupTestSuite(t)
	userToken := s.token(t, "user-1", "Ana Gómez", "user")
	modToken := s.token(t, "mod-1", "Mod One", "moderator")

	subID := s.submitPlace(t, userToken, "Café X")

	// pending queue contains it
	w, resp := s.request(t, http.MethodGet, "/api/v1/moderation/pending", modToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var pending []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, subID, pending[0].ID)
	assert.Equal(t, "pending", pending[0].Status)

	// but the catalog does not see it yet
	w, resp = s.request(t, http.MethodGet, "/api/v1/places?q="+url.QueryEscape("Café X")+"&category=All", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var places []any
	require.NoError(t, json.Unmarshal(resp.Data, &places))
	assert.Empty(t, places)
}

func TestApprovePromotesIntoCatalogAndHistory(t *testing.T) {
	s := setupTestSuite(t)
	userToken := s.token(t, "user-1", "Ana Gómez", "user")
	modToken := s.token(t, "mod-1", "Mod One", "moderator")

	subID := s.submitPlace(t, userToken, "Café X")
	placeID := s.approve(t, modToken, subID)

	w, resp := s.request(t, http.MethodGet, "/api/v1/places/"+placeID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var place struct {
		Name     string `json:"name"`
		Approved bool   `json:"approved"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &place))
	assert.Equal(t, "Café X", place.Name)
	assert.True(t, place.Approved)

	w, resp = s.request(t, http.MethodGet, "/api/v1/moderation/history", modToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var history []struct {
		ID              string `json:"id"`
		Status          string `json:"status"`
		ModeratedBy     string `json:"moderated_by"`
		ModeratedByName string `json:"moderated_by_name"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &history))
	require.Len(t, history, 1)
	assert.Equal(t, subID, history[0].ID)
	assert.Equal(t, "approved", history[0].Status)
	assert.Equal(t, "mod-1", history[0].ModeratedBy)
	assert.Equal(t, "Mod One", history[0].ModeratedByName)

	// the stored row links to the promoted place and carries the decision stamp
	stored, err := repository.NewSubmissionRepository(s.db).GetByID(context.Background(), subID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionApproved, stored.Status)
	assert.Equal(t, placeID, stored.PlaceID)
	assert.NotNil(t, stored.ModeratedAt)
}

func TestSecondDecisionConflicts(t *testing.T) {
	s := setupTestSuite(t)
	userToken := s.token(t, "user-1", "Ana Gómez", "user")
	modA := s.token(t, "mod-a", "Mod A", "moderator")
	modB := s.token(t, "mod-b", "Mod B", "moderator")

	subID := s.submitPlace(t, userToken, "Café X")
	s.approve(t, modA, subID)

	w, resp := s.request(t, http.MethodPost, "/api/v1/moderation/"+subID+"/reject", modB, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", resp.Error.Code)

	w, resp = s.request(t, http.MethodPost, "/api/v1/moderation/"+subID+"/approve", modB, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", resp.Error.Code)
}

func TestDuplicateReviewRejectedAverageUnchanged(t *testing.T) {
	s := setupTestSuite(t)
	userToken := s.token(t, "user-1", "Ana Gómez", "user")
	modToken := s.token(t, "mod-1", "Mod One", "moderator")

	subID := s.submitPlace(t, userToken, "Café X")
	placeID := s.approve(t, modToken, subID)

	w, _ := s.request(t, http.MethodPost, "/api/v1/reviews", userToken, gin.H{
		"place_id": placeID, "rating": 5, "comment": "great",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := s.request(t, http.MethodPost, "/api/v1/reviews", userToken, gin.H{
		"place_id": placeID, "rating": 3, "comment": "again",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", resp.Error.Code)

	w, resp = s.request(t, http.MethodGet, "/api/v1/places/"+placeID+"/rating", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rating struct {
		Average float64 `json:"average"`
		Count   int     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &rating))
	assert.Equal(t, 5.0, rating.Average)
	assert.Equal(t, 1, rating.Count)
}

func TestOutOfRangeRatingNeverPersisted(t *testing.T) {
	s := setupTestSuite(t)
	userToken := s.token(t, "user-1", "Ana Gómez", "user")
	modToken := s.token(t, "mod-1", "Mod One", "moderator")

	subID := s.submitPlace(t, userToken, "Café X")
	placeID := s.approve(t, modToken, subID)

	for _, rating := range []int{0, 6} {
		w, _ := s.request(t, http.MethodPost, "/api/v1/reviews", userToken, gin.H{
			"place_id": placeID, "rating": rating,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	_, resp := s.request(t, http.MethodGet, "/api/v1/places/"+placeID+"/reviews", "", nil)
	var reviews []any
	require.NoError(t, json.Unmarshal(resp.Data, &reviews))
	assert.Empty(t, reviews)
}

func TestUnauthenticatedToggleRefused(t *testing.T) {
	s := setupTestSuite(t)
	userToken := s.token(t, "user-1", "Ana Gómez", "user")
	modToken := s.token(t, "mod-1", "Mod One", "moderator")

	subID := s.submitPlace(t, userToken, "Café X")
	placeID := s.approve(t, modToken, subID)

	w, resp := s.request(t, http.MethodPost, "/api/v1/favorites/"+placeID+"/toggle", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_REQUIRED", resp.Error.Code)

	_, resp = s.request(t, http.MethodGet, "/api/v1/favorites/"+placeID, "", nil)
	var membership struct {
		Favorite bool `json:"favorite"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &membership))
	assert.False(t, membership.Favorite)
}

func TestFavoriteToggleRoundTrip(t *testing.T) {
	s := setupTestSuite(t)
	userToken := s.token(t, "user-1", "Ana Gómez", "user")
	modToken := s.token(t, "mod-1", "Mod One", "moderator")

	subID := s.submitPlace(t, userToken, "Café X")
	placeID := s.approve(t, modToken, subID)

	toggle := func() bool {
		w, resp := s.request(t, http.MethodPost, "/api/v1/favorites/"+placeID+"/toggle", userToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var membership struct {
			Favorite bool `json:"favorite"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &membership))
		return membership.Favorite
	}

	assert.True(t, toggle())

	w, resp := s.request(t, http.MethodGet, "/api/v1/favorites", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var favorites []struct {
		PlaceID string `json:"place_id"`
		Place   *struct {
			Name string `json:"name"`
		} `json:"place"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, placeID, favorites[0].PlaceID)
	require.NotNil(t, favorites[0].Place)
	assert.Equal(t, "Café X", favorites[0].Place.Name)

	// toggling again restores the original state
	assert.False(t, toggle())
}

func TestModerationEndpointsRequireModeratorRole(t *testing.T) {
	s := setupTestSuite(t)
	userToken := s.token(t, "user-1", "Ana Gómez", "user")

	subID := s.submitPlace(t, userToken, "Café X")

	w, resp := s.request(t, http.MethodPost, fmt.Sprintf("/api/v1/moderation/%s/approve", subID), userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)

	w, _ = s.request(t, http.MethodGet, "/api/v1/moderation/pending", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLocationPrecedenceOverHTTP(t *testing.T) {
	s := setupTestSuite(t)
	userToken := s.token(t, "user-1", "Ana Gómez", "user")

	w, resp := s.request(t, http.MethodPost, "/api/v1/location/manual", userToken, gin.H{"lat": 4.5, "lon": -75.6})
	require.Equal(t, http.StatusOK, w.Code)

	var sample struct {
		Lat    float64 `json:"lat"`
		Source string  `json:"source"`
		Sticky bool    `json:"sticky"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &sample))
	assert.Equal(t, "manual", sample.Source)
	assert.True(t, sample.Sticky)

	// a device fix does not displace the sticky manual choice
	w, resp = s.request(t, http.MethodPost, "/api/v1/location/device", userToken, gin.H{"lat": 4.1, "lon": -75.1})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &sample))
	assert.Equal(t, "manual", sample.Source)
	assert.Equal(t, 4.5, sample.Lat)

	// reset reverts to the recorded device fix
	w, resp = s.request(t, http.MethodPost, "/api/v1/location/reset", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &sample))
	assert.Equal(t, "device", sample.Source)
	assert.Equal(t, 4.1, sample.Lat)
}
