package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TuneTutorsUK/tutor-scheduler/internal/httperr"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/httpresp"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/middleware"
	ucAvailability "github.com/TuneTutorsUK/tutor-scheduler/internal/usecase/availability"
)

// ======================================================
// HANDLER (tutor-scoped slot management)
// ======================================================

type AvailabilityHandler struct {
	createUC *ucAvailability.CreateSlot
	updateUC *ucAvailability.UpdateSlot
	deleteUC *ucAvailability.DeleteSlot
	listMyUC *ucAvailability.ListMyAdSlots
}

func NewAvailabilityHandler(
	createUC *ucAvailability.CreateSlot,
	updateUC *ucAvailability.UpdateSlot,
	deleteUC *ucAvailability.DeleteSlot,
	listMyUC *ucAvailability.ListMyAdSlots,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listMyUC: listMyUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSlotRequest struct {
	AdID         uint      `json:"ad_id" binding:"required"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	UserCapacity *int      `json:"user_capacity"`
}

type UpdateSlotRequest struct {
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	UserCapacity *int       `json:"user_capacity,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AvailabilityHandler) Create(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextTutorID).(uint)

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	slot, err := h.createUC.Execute(c.Request.Context(), ucAvailability.CreateSlotInput{
		TutorID:   tutorID,
		AdID:      req.AdID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Capacity:  req.UserCapacity,
	})
	if err != nil {
		mapSlotError(c, err)
		return
	}

	httpresp.Created(c, slot)
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextTutorID).(uint)

	slotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	slot, err := h.updateUC.Execute(c.Request.Context(), ucAvailability.UpdateSlotInput{
		TutorID:   tutorID,
		SlotID:    slotID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Capacity:  req.UserCapacity,
	})
	if err != nil {
		mapSlotError(c, err)
		return
	}

	httpresp.OK(c, slot)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextTutorID).(uint)

	slotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), tutorID, slotID); err != nil {
		mapSlotError(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *AvailabilityHandler) ListMyAd(c *gin.Context) {
	tutorID := c.MustGet(middleware.ContextTutorID).(uint)

	adID, ok := parseIDParam(c, "adId")
	if !ok {
		return
	}

	slots, err := h.listMyUC.Execute(c.Request.Context(), tutorID, adID)
	if err != nil {
		mapSlotError(c, err)
		return
	}

	httpresp.OK(c, slots)
}
