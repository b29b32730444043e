package user

// Status is the lifecycle state derived from the persisted is_active and
// is_deleted flags. Hard deletion removes the row and has no state here.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDeleted  Status = "deleted"
)

// Action is a requested lifecycle transition.
type Action string

const (
	ActionActivate   Action = "activate"
	ActionDeactivate Action = "deactivate"
	ActionSoftDelete Action = "soft_delete"
	ActionRestore    Action = "restore"
)

func (s Status) String() string { return string(s) }

// StatusOf normalizes the two-flag persisted shape. The deleted flag wins
// over the active flag, so the invalid active-and-deleted combination is
// never observable.
func StatusOf(isActive, isDeleted bool) Status {
	switch {
	case isDeleted:
		return StatusDeleted
	case isActive:
		return StatusActive
	default:
		return StatusInactive
	}
}

// Flags maps a Status back onto the persisted booleans.
func (s Status) Flags() (isActive, isDeleted bool) {
	switch s {
	case StatusActive:
		return true, false
	case StatusInactive:
		return false, false
	case StatusDeleted:
		return false, true
	}
	return false, false
}

// Transition validates a lifecycle move. Activate and deactivate are
// self-transition no-ops; restore always lands on active, not on whatever
// state preceded deletion. Every other combination is rejected.
func Transition(from Status, action Action) (Status, error) {
	switch action {
	case ActionActivate:
		if from == StatusActive || from == StatusInactive {
			return StatusActive, nil
		}
	case ActionDeactivate:
		if from == StatusActive || from == StatusInactive {
			return StatusInactive, nil
		}
	case ActionSoftDelete:
		if from == StatusActive || from == StatusInactive {
			return StatusDeleted, nil
		}
	case ActionRestore:
		if from == StatusDeleted {
			return StatusActive, nil
		}
	}
	return "", &InvalidTransitionError{From: from, Action: action}
}
