package models

import "strings"

// ActionChoice is the moderation action picked during a judgment
type ActionChoice string

const (
	// ActionKick removes the target from the guild
	ActionKick ActionChoice = "kick"

	// ActionCastigo applies a ten minute timeout
	ActionCastigo ActionChoice = "castigo"

	// ActionMute server-mutes the target in voice for ten minutes
	ActionMute ActionChoice = "mute"

	// ActionDisconnectAdm kicks the target out of the admin voice channel
	ActionDisconnectAdm ActionChoice = "disconnect_adm"
)

// actionTokens maps every accepted reply token to its action
var actionTokens = map[string]ActionChoice{
	"1":              ActionKick,
	"kick":           ActionKick,
	"2":              ActionCastigo,
	"castigo":        ActionCastigo,
	"3":              ActionMute,
	"mute":           ActionMute,
	"4":              ActionDisconnectAdm,
	"disconnect":     ActionDisconnectAdm,
	"disconnect_adm": ActionDisconnectAdm,
}

// ParseActionChoice resolves a reply token, ignoring case and surrounding space
func ParseActionChoice(token string) (ActionChoice, bool) {
	action, ok := actionTokens[strings.ToLower(strings.TrimSpace(token))]
	return action, ok
}
