package response

// MovementCreatedResponse acknowledges a recorded stock movement.
type MovementCreatedResponse struct {
	MovementID uint `json:"movement_id"`
}
