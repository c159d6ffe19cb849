package types

import "github.com/google/uuid"

// NewRequestID issues an ID attached to logs of one request or labeling cycle
func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}
