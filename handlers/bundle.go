// File: servicebuddy/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoints
	ChatHandler gin.HandlerFunc

	// Usage endpoints
	GetUsageHandler    gin.HandlerFunc
	RecordUsageHandler gin.HandlerFunc

	// Transcription endpoints
	TranscribeHandler gin.HandlerFunc
}
