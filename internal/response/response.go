package response

import "tutoring_queue/internal/models"

// SuccessResponse is a plain acknowledgement.
type SuccessResponse struct {
	Message string `json:"message" example:"Operation completed"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	// Machine readable error code
	// example: VALIDATION_ERROR
	Code string `json:"code"`

	// Human readable message
	// example: Invalid request data
	Message string `json:"message"`

	// Optional details
	// example: Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'email' tag
	Details string `json:"details,omitempty"`
}

// TokenResponse carries a fresh token pair.
type TokenResponse struct {
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refresh_token"`
}

// AccountResponse is an account without credentials.
type AccountResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// EntryResponse is a queue entry together with its estimated wait in minutes.
type EntryResponse struct {
	models.QueueEntry
	EstimatedWait int `json:"estimatedWait"`
}

// ParticipantResponse is what admins see for each person in a queue.
type ParticipantResponse struct {
	EntryResponse
	Name  string `json:"name"`
	Email string `json:"email"`
}

// QueueSnapshotResponse is the current line for one service.
type QueueSnapshotResponse struct {
	Service models.Service `json:"service"`
	Waiting int            `json:"waiting"`
	// Only filled for admins.
	Participants []ParticipantResponse `json:"participants,omitempty"`
	// The caller's own entry, if any.
	Mine *EntryResponse `json:"mine,omitempty"`
}

// ActiveQueueResponse is one of the caller's current queues.
type ActiveQueueResponse struct {
	EntryResponse
	ServiceName string `json:"serviceName"`
	ServiceIcon string `json:"serviceIcon"`
}

// LeaveResponse is a retired entry with its recorded outcome. Entry.Status
// is the status the entry had while it was still waiting.
type LeaveResponse struct {
	Entry   models.QueueEntry `json:"entry"`
	Outcome models.Outcome    `json:"outcome"`
}

// UnreadResponse counts unread notifications.
type UnreadResponse struct {
	Unread int `json:"unread"`
}

// StatsResponse is the admin dashboard for one day.
type StatsResponse struct {
	Date         string `json:"date"`
	Served       int    `json:"served"`
	NoShows      int    `json:"noShows"`
	Cancelled    int    `json:"cancelled"`
	AvgWaitTime  int    `json:"avgWaitTime"`
	NoShowRate   int    `json:"noShowRate"`
	TotalWaiting int    `json:"totalWaiting"`
	OpenServices int    `json:"openServices"`
}
