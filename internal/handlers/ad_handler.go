package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TuneTutorsUK/tutor-scheduler/internal/httperr"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/httpresp"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/media"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/middleware"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/models"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/storage"
)

const maxImageUploadBytes = 8 << 20

// ======================================================
// HANDLER (catalog: ads the availability core hangs off)
// ======================================================

type AdHandler struct {
	db     *gorm.DB
	images storage.ImageStore
}

func NewAdHandler(db *gorm.DB, images storage.ImageStore) *AdHandler {
	return &AdHandler{db: db, images: images}
}

// --------- Requests ---------

type CreateAdRequest struct {
	InstrumentID    uint    `json:"instrument_id" binding:"required"`
	LocationID      *uint   `json:"location_id"`
	AdDescription   string  `json:"ad_description" binding:"required"`
	YearsExperience int     `json:"years_experience"`
	HourlyRate      float64 `json:"hourly_rate" binding:"required"`
}

type UpdateAdRequest struct {
	InstrumentID    *uint    `json:"instrument_id,omitempty"`
	LocationID      *uint    `json:"location_id,omitempty"`
	AdDescription   *string  `json:"ad_description,omitempty"`
	YearsExperience *int     `json:"years_experience,omitempty"`
	HourlyRate      *float64 `json:"hourly_rate,omitempty"`
}

// --------- Public ---------

func (h *AdHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Ad{})

	if instrumentID := c.Query("instrument_id"); instrumentID != "" {
		q = q.Where("instrument_id = ?", instrumentID)
	}
	if locationID := c.Query("location_id"); locationID != "" {
		q = q.Where("location_id = ?", locationID)
	}

	var ads []models.Ad
	if err := q.Order("ad_id DESC").Find(&ads).Error; err != nil {
		httperr.Internal(c, "failed_to_list_ads", "Error listing ads.")
		return
	}

	httpresp.List(c, ads)
}

func (h *AdHandler) Get(c *gin.Context) {
	adID, ok := parseIDParam(c, "adId")
	if !ok {
		return
	}

	var ad models.Ad
	if err := h.db.First(&ad, adID).Error; err != nil {
		httperr.NotFound(c, "ad_not_found", "Ad not found.")
		return
	}

	httpresp.OK(c, ad)
}

// --------- Tutor-scoped ---------

func (h *AdHandler) Create(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextTutorID).(uint)

	var req CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ad := models.Ad{
		TutorID:         tutorID,
		InstrumentID:    req.InstrumentID,
		LocationID:      req.LocationID,
		AdDescription:   req.AdDescription,
		YearsExperience: req.YearsExperience,
		HourlyRate:      req.HourlyRate,
	}

	if err := h.db.Create(&ad).Error; err != nil {
		httperr.Internal(c, "failed_to_create_ad", "Error creating ad.")
		return
	}

	httpresp.Created(c, ad)
}

func (h *AdHandler) Update(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextTutorID).(uint)

	adID, ok := parseIDParam(c, "adId")
	if !ok {
		return
	}

	ad, ok := h.getOwnedAd(c, adID, tutorID)
	if !ok {
		return
	}

	var req UpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.InstrumentID != nil {
		ad.InstrumentID = *req.InstrumentID
	}
	if req.LocationID != nil {
		ad.LocationID = req.LocationID
	}
	if req.AdDescription != nil {
		ad.AdDescription = *req.AdDescription
	}
	if req.YearsExperience != nil {
		ad.YearsExperience = *req.YearsExperience
	}
	if req.HourlyRate != nil {
		ad.HourlyRate = *req.HourlyRate
	}

	if err := h.db.Save(ad).Error; err != nil {
		httperr.Internal(c, "failed_to_update_ad", "Error updating ad.")
		return
	}

	httpresp.OK(c, ad)
}

func (h *AdHandler) Delete(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextTutorID).(uint)

	adID, ok := parseIDParam(c, "adId")
	if !ok {
		return
	}

	ad, ok := h.getOwnedAd(c, adID, tutorID)
	if !ok {
		return
	}

	if err := h.db.Delete(ad).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_ad", "Error deleting ad.")
		return
	}

	httpresp.NoContent(c)
}

// UploadImage accepts a multipart JPEG/PNG, re-encodes it as webp and stores
// it under a fresh object key. The ad keeps pointing at its old image until
// the new URL is saved.
func (h *AdHandler) UploadImage(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextTutorID).(uint)

	adID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ad, ok := h.getOwnedAd(c, adID, tutorID)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}
	if fileHeader.Size > maxImageUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image exceeds the 8MB limit.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Error reading upload.")
		return
	}
	defer file.Close()

	encoded, err := media.EncodeWebP(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Upload must be a valid JPEG or PNG.")
		return
	}

	key := fmt.Sprintf("ads/%d/%s.webp", ad.AdID, uuid.NewString())

	url, err := h.images.Put(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_store_image", "Error storing image.")
		return
	}

	ad.ImgURL = url
	if err := h.db.Save(ad).Error; err != nil {
		httperr.Internal(c, "failed_to_update_ad", "Error saving image URL.")
		return
	}

	httpresp.OK(c, ad)
}

func (h *AdHandler) getOwnedAd(c *gin.Context, adID, tutorID uint) (*models.Ad, bool) {
	var ad models.Ad
	if err := h.db.First(&ad, adID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "ad_not_found", "Ad not found.")
		} else {
			httperr.Internal(c, "failed_to_get_ad", "Error loading ad.")
		}
		return nil, false
	}

	if ad.TutorID != tutorID {
		httperr.Forbidden(c, "not_ad_owner", "You do not own this ad.")
		return nil, false
	}

	return &ad, true
}
