package models

import "time"

// EventUserJoinedMonitoredVoiceChannel is the only event type delivered today
const EventUserJoinedMonitoredVoiceChannel = "USER_JOINED_MONITORED_VOICE_CHANNEL"

// WebhookEvent is the JSON body posted to the configured webhook
type WebhookEvent struct {
	Event      string         `json:"event"`
	OccurredAt string         `json:"occurred_at"`
	Guild      WebhookRef     `json:"guild"`
	Channel    WebhookRef     `json:"channel"`
	User       WebhookUserRef `json:"user"`
}

// WebhookRef references a guild or a channel
type WebhookRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WebhookUserRef references the user that triggered the event
type WebhookUserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Tag      string `json:"tag"`
}

// FormatOccurredAt renders a timestamp as ISO-8601 in UTC
func FormatOccurredAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// DeliveryAttempt describes one POST made while sending a webhook event
type DeliveryAttempt struct {
	Attempt     int
	StatusCode  int
	Err         error
	BodyExcerpt string
}

// Succeeded reports whether the attempt got a 2xx response
func (a *DeliveryAttempt) Succeeded() bool {
	return a.Err == nil && a.StatusCode >= 200 && a.StatusCode < 300
}
