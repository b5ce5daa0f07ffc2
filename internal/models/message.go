package models

import "time"

// Message is a free-standing note between two identities, optionally attached
// to an application.
type Message struct {
	ID            string    `json:"id"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Content       string    `json:"content"`
	Timestamp     time.Time `json:"timestamp"`
	ApplicationID string    `json:"applicationId,omitempty"`
}
