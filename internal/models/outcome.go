package models

// OutcomeDraw is the result of comparing the requester's number with the bot's roll
type OutcomeDraw struct {
	// Chosen is the number picked by the requester, 1 to 10
	Chosen int

	// Rolled is the number drawn by the bot, 1 to 10
	Rolled int

	// Matched is true when both numbers are equal
	Matched bool
}
