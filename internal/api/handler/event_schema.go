package handler

import "time"

type carrierEventRequest struct {
	TrackingNumber string    `json:"tracking_number" validate:"required"`
	Status         string    `json:"status"          validate:"required,oneof=shipped delivered"`
	Timestamp      time.Time `json:"timestamp"       validate:"required"`
	Source         string    `json:"source"          validate:"required"`
	Notes          string    `json:"notes"`
}
