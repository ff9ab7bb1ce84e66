package models

import "time"

// Log messages written by the API.
const (
	LogMessageHTTPRequest    = "http_request"
	LogMessageEndpointAccess = "endpoint_access"
)

// Log is a persisted record of an HTTP request or endpoint access.
type Log struct {
	Base
	Level      string         `gorm:"not null;default:info" json:"level"`
	Message    string         `gorm:"not null" json:"message"`
	Method     string         `json:"method,omitempty"`
	Path       string         `json:"path,omitempty"`
	StatusCode int            `json:"statusCode,omitempty"`
	Meta       map[string]any `gorm:"type:text;serializer:json" json:"meta,omitempty"`
	CreatedAt  time.Time      `gorm:"index" json:"createdAt"`
}
