package models

import (
	"time"

	"github.com/google/uuid"
)

// Session holds the per-run user state. Risk is chosen once and read by
// every calculator.
type Session struct {
	ID        string
	Risk      RiskTier
	StartedAt time.Time
}

// NewSession creates a session with a fresh identifier and no risk tier.
func NewSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}
}

// HasRisk reports whether the risk tier has been chosen.
func (s *Session) HasRisk() bool {
	return s != nil && s.Risk.Valid()
}
