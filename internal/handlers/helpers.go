package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/TuneTutorsUK/tutor-scheduler/internal/domain/availability"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/httperr"
)

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid "+name+".")
		return 0, false
	}
	return uint(id), true
}

// mapSlotError translates availability business errors to HTTP statuses.
// Mutating a booked slot is a 400 (bad request against current state);
// losing a booking race is a 409.
func mapSlotError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "availability_error", "Unexpected availability error.")
		return
	}

	switch code {
	case domain.CodeMissingTimes:
		httperr.BadRequest(c, code, "start_time and end_time are required.")
	case domain.CodeInvalidTimeRange:
		httperr.BadRequest(c, code, "end_time must be after start_time.")
	case domain.CodeInvalidCapacity:
		httperr.BadRequest(c, code, "user_capacity must be a positive integer.")
	case domain.CodeInvalidState:
		httperr.BadRequest(c, code, "Slot is booked and can no longer be changed.")
	case domain.CodeAdNotFound:
		httperr.NotFound(c, code, "Ad not found.")
	case domain.CodeSlotNotFound:
		httperr.NotFound(c, code, "Slot not found.")
	case domain.CodeNotAdOwner:
		httperr.Forbidden(c, code, "You do not own this ad.")
	case domain.CodeAlreadyBooked:
		httperr.Conflict(c, code, "Slot already booked.")
	case domain.CodeNoCapacity:
		httperr.Conflict(c, code, "Slot has no remaining capacity.")
	default:
		httperr.Internal(c, "availability_error", "Unexpected availability error.")
	}
}
