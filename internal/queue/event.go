// Package queue defines the attack-telemetry messages exchanged over the
// message broker, plus the background consumer that turns them into an
// audit log.
package queue

// SecurityEvent is published for every request that reaches one of the
// vulnerability endpoints. It gives downstream consumers enough to
// reconstruct an exploitation session without querying the application.
type SecurityEvent struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	Query      string `json:"query,omitempty"`
	RemoteAddr string `json:"remote_addr"`
	UserAgent  string `json:"user_agent,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
	ObservedAt string `json:"observed_at"`
}
