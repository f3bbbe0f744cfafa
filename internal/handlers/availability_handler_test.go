package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TuneTutorsUK/tutor-scheduler/internal/audit"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/config"
	domain "github.com/TuneTutorsUK/tutor-scheduler/internal/domain/availability"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/httperr"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/middleware"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/models"
	ucAvailability "github.com/TuneTutorsUK/tutor-scheduler/internal/usecase/availability"
)

const testJWTSecret = "unit-test-secret"

// stubRepo backs the handler tests without a database. BookSlot keeps the
// same all-or-nothing contract as the gorm repository.
type stubRepo struct {
	mu     sync.Mutex
	ads    map[uint]*models.Ad
	slots  map[uint]*models.Availability
	nextID uint
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		ads:   make(map[uint]*models.Ad),
		slots: make(map[uint]*models.Availability),
	}
}

func (r *stubRepo) addAd(adID, tutorID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ads[adID] = &models.Ad{AdID: adID, TutorID: tutorID}
}

func (r *stubRepo) GetAdByID(_ context.Context, adID uint) (*models.Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ad, ok := r.ads[adID]
	if !ok {
		return nil, httperr.ErrBusiness(domain.CodeAdNotFound)
	}
	copied := *ad
	return &copied, nil
}

func (r *stubRepo) ListByAd(_ context.Context, adID uint) ([]models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Availability{}
	for _, slot := range r.slots {
		if slot.AdID == adID {
			out = append(out, *slot)
		}
	}
	return out, nil
}

func (r *stubRepo) GetSlotByID(_ context.Context, slotID uint) (*models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[slotID]
	if !ok {
		return nil, httperr.ErrBusiness(domain.CodeSlotNotFound)
	}
	copied := *slot
	return &copied, nil
}

func (r *stubRepo) CreateSlot(_ context.Context, slot *models.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	slot.AvailabilityID = r.nextID
	copied := *slot
	r.slots[slot.AvailabilityID] = &copied
	return nil
}

func (r *stubRepo) SaveSlot(_ context.Context, slot *models.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slots[slot.AvailabilityID]; !ok {
		return httperr.ErrBusiness(domain.CodeSlotNotFound)
	}
	copied := *slot
	r.slots[slot.AvailabilityID] = &copied
	return nil
}

func (r *stubRepo) DeleteSlot(_ context.Context, slotID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slots[slotID]; !ok {
		return httperr.ErrBusiness(domain.CodeSlotNotFound)
	}
	delete(r.slots, slotID)
	return nil
}

func (r *stubRepo) BookSlot(_ context.Context, slotID uint, bookingUserID uint) (*models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[slotID]
	if !ok {
		return nil, httperr.ErrBusiness(domain.CodeSlotNotFound)
	}
	if slot.IsBooked {
		return nil, httperr.ErrBusiness(domain.CodeAlreadyBooked)
	}
	if slot.UserCapacity <= 0 {
		return nil, httperr.ErrBusiness(domain.CodeNoCapacity)
	}
	userID := bookingUserID
	slot.UserID = &userID
	slot.UserCapacity--
	if slot.UserCapacity == 0 {
		slot.IsBooked = true
	}
	copied := *slot
	return &copied, nil
}

var _ domain.Repository = (*stubRepo)(nil)

func newTestRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: testJWTSecret}

	guard := ucAvailability.NewOwnerGuard(repo)
	dispatcher := audit.NewDispatcher(nil, zap.NewNop())

	availabilityHandler := NewAvailabilityHandler(
		ucAvailability.NewCreateSlot(repo, guard, dispatcher),
		ucAvailability.NewUpdateSlot(repo, guard, dispatcher),
		ucAvailability.NewDeleteSlot(repo, guard, dispatcher),
		ucAvailability.NewListMyAdSlots(repo, guard),
	)
	publicHandler := NewPublicHandler(
		ucAvailability.NewListAdSlots(repo),
		ucAvailability.NewBookSlot(repo, dispatcher),
	)

	r := gin.New()
	api := r.Group("/api")

	api.GET("/ads/:adId/availability", publicHandler.ListForAd)
	api.POST("/availability/:id/book", publicHandler.Book)

	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/availability/ad/:adId", availabilityHandler.ListMyAd)
		secured.POST("/availability", availabilityHandler.Create)
		secured.PUT("/availability/:id", availabilityHandler.Update)
		secured.DELETE("/availability/:id", availabilityHandler.Delete)
	}

	return r
}

func tokenFor(t *testing.T, tutorID uint) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": tutorID,
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
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
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	code, _ := body["error_code"].(string)
	return code
}

func TestCreateThenPublicListRoundTrip(t *testing.T) {
	repo := newStubRepo()
	repo.addAd(1, 10)
	r := newTestRouter(repo)
	token := tokenFor(t, 10)

	start := time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	w := doJSON(t, r, http.MethodPost, "/api/availability", token, gin.H{
		"ad_id":         1,
		"start_time":    start,
		"end_time":      end,
		"user_capacity": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.AvailabilityID)

	w = doJSON(t, r, http.MethodGet, "/api/ads/1/availability", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	assert.Equal(t, created.AvailabilityID, listed[0].AvailabilityID)
	assert.True(t, listed[0].StartTime.Equal(start))
	assert.True(t, listed[0].EndTime.Equal(end))
	assert.Equal(t, 2, listed[0].UserCapacity)
	assert.False(t, listed[0].IsBooked)
	assert.Nil(t, listed[0].UserID)
}

func TestCreateSlotValidation(t *testing.T) {
	repo := newStubRepo()
	repo.addAd(1, 10)
	r := newTestRouter(repo)
	token := tokenFor(t, 10)

	start := time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)

	t.Run("end before start", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/availability", token, gin.H{
			"ad_id":      1,
			"start_time": start,
			"end_time":   start.Add(-time.Hour),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.CodeInvalidTimeRange, errorCode(t, w))
	})

	t.Run("missing times", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/availability", token, gin.H{
			"ad_id": 1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.CodeMissingTimes, errorCode(t, w))
	})

	t.Run("unknown ad", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/availability", token, gin.H{
			"ad_id":      404,
			"start_time": start,
			"end_time":   start.Add(time.Hour),
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, domain.CodeAdNotFound, errorCode(t, w))
	})

	// nothing above should have persisted a slot
	w := doJSON(t, r, http.MethodGet, "/api/ads/1/availability", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed)
}

func TestTutorListingRequiresAuth(t *testing.T) {
	repo := newStubRepo()
	repo.addAd(1, 10)
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/api/availability/ad/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/availability/ad/1", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/availability/ad/1", tokenFor(t, 10), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateForeignSlotForbidden(t *testing.T) {
	repo := newStubRepo()
	repo.addAd(1, 10)
	r := newTestRouter(repo)

	start := time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)
	w := doJSON(t, r, http.MethodPost, "/api/availability", tokenFor(t, 10), gin.H{
		"ad_id":      1,
		"start_time": start,
		"end_time":   start.Add(time.Hour),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/availability/%d", created.AvailabilityID)
	w = doJSON(t, r, http.MethodPut, path, tokenFor(t, 99), gin.H{
		"user_capacity": 3,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, domain.CodeNotAdOwner, errorCode(t, w))
}

func TestBookingLifecycle(t *testing.T) {
	repo := newStubRepo()
	repo.addAd(1, 10)
	r := newTestRouter(repo)
	token := tokenFor(t, 10)

	start := time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)
	w := doJSON(t, r, http.MethodPost, "/api/availability", token, gin.H{
		"ad_id":      1,
		"start_time": start,
		"end_time":   start.Add(time.Hour),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	bookPath := fmt.Sprintf("/api/availability/%d/book", created.AvailabilityID)

	// first booking wins
	w = doJSON(t, r, http.MethodPost, bookPath, "", gin.H{"user_id": 7})
	require.Equal(t, http.StatusOK, w.Code)

	var booked models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booked))
	assert.True(t, booked.IsBooked)
	assert.Equal(t, 0, booked.UserCapacity)
	require.NotNil(t, booked.UserID)
	assert.Equal(t, uint(7), *booked.UserID)

	// second booking conflicts
	w = doJSON(t, r, http.MethodPost, bookPath, "", gin.H{"user_id": 8})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, domain.CodeAlreadyBooked, errorCode(t, w))

	// the booked slot is frozen for the tutor too
	slotPath := fmt.Sprintf("/api/availability/%d", created.AvailabilityID)
	w = doJSON(t, r, http.MethodDelete, slotPath, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.CodeInvalidState, errorCode(t, w))

	w = doJSON(t, r, http.MethodPut, slotPath, token, gin.H{"user_capacity": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.CodeInvalidState, errorCode(t, w))
}

func TestBookValidation(t *testing.T) {
	repo := newStubRepo()
	repo.addAd(1, 10)
	r := newTestRouter(repo)

	t.Run("unknown slot", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/availability/404/book", "", gin.H{"user_id": 7})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, domain.CodeSlotNotFound, errorCode(t, w))
	})

	t.Run("missing user_id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/availability/1/book", "", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad slot id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/availability/zero/book", "", gin.H{"user_id": 7})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_id", errorCode(t, w))
	})
}

func TestDeleteOpenSlot(t *testing.T) {
	repo := newStubRepo()
	repo.addAd(1, 10)
	r := newTestRouter(repo)
	token := tokenFor(t, 10)

	start := time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)
	w := doJSON(t, r, http.MethodPost, "/api/availability", token, gin.H{
		"ad_id":      1,
		"start_time": start,
		"end_time":   start.Add(time.Hour),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/availability/%d", created.AvailabilityID), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/ads/1/availability", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed)
}
