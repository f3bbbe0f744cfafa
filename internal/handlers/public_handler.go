package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/TuneTutorsUK/tutor-scheduler/internal/httperr"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/httpresp"
	ucAvailability "github.com/TuneTutorsUK/tutor-scheduler/internal/usecase/availability"
)

// ======================================================
// HANDLER (public browsing + booking)
// ======================================================

type PublicHandler struct {
	listUC *ucAvailability.ListAdSlots
	bookUC *ucAvailability.BookSlot
}

func NewPublicHandler(
	listUC *ucAvailability.ListAdSlots,
	bookUC *ucAvailability.BookSlot,
) *PublicHandler {
	return &PublicHandler{
		listUC: listUC,
		bookUC: bookUC,
	}
}

type BookSlotRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// ListForAd returns every slot of an ad, open or booked, ordered by start
// time. No session required; the booking UI consumes this.
func (h *PublicHandler) ListForAd(c *gin.Context) {
	adID, ok := parseIDParam(c, "adId")
	if !ok {
		return
	}

	slots, err := h.listUC.Execute(c.Request.Context(), adID)
	if err != nil {
		mapSlotError(c, err)
		return
	}

	httpresp.OK(c, slots)
}

func (h *PublicHandler) Book(c *gin.Context) {
	slotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "user_id is required.")
		return
	}

	slot, err := h.bookUC.Execute(c.Request.Context(), slotID, req.UserID)
	if err != nil {
		mapSlotError(c, err)
		return
	}

	httpresp.OK(c, slot)
}
