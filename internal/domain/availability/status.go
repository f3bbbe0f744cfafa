package availability

// ===============================
// Business error codes
// ===============================

const (
	CodeMissingTimes     = "missing_times"
	CodeInvalidTimeRange = "invalid_time_range"
	CodeInvalidCapacity  = "invalid_capacity"

	CodeAdNotFound   = "ad_not_found"
	CodeSlotNotFound = "slot_not_found"
	CodeNotAdOwner   = "not_ad_owner"

	CodeInvalidState  = "invalid_state"
	CodeAlreadyBooked = "already_booked"
	CodeNoCapacity    = "no_capacity"
)

// DefaultCapacity is the seat count a slot gets when the tutor omits it.
const DefaultCapacity = 1
