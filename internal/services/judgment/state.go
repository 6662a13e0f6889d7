package judgment

// State is a step of one !julgar flow
type State string

const (
	StateIdle            State = "idle"
	StateSelectingTarget State = "selecting_target"
	StateSelectingAction State = "selecting_action"
	StateSelectingNumber State = "selecting_number"
	StateResolving       State = "resolving"
	StateCompleted       State = "completed"
)
