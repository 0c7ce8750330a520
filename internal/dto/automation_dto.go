package dto

type PublishEventRequest struct {
	Event string                 `json:"event" validate:"required"`
	Data  map[string]interface{} `json:"data"`
}

type PublishEventResponse struct {
	Delivered bool `json:"delivered"`
}
