package booking

import "RestaurantAssistant/pkg/response"

var (
	ErrSessionNotFound = response.NewError(404, "session not found")
	ErrInvalidSlot     = response.NewError(400, "unknown slot name")
	ErrEmptyTurn       = response.NewError(400, "turn carries no intent, entities, slots or text")
	ErrSessionStore    = response.NewError(500, "failed to access session store")
	ErrSessionCorrupt  = response.NewError(500, "stored session could not be decoded")
)
