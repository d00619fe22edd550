// Package lifecycle encodes the appointment status machine. It only predicts
// which actions a screen should offer for a given status; the backend owns
// the actual transition and may still reject an offered action (for example
// after a concurrent change by another actor).
package lifecycle

// Status is an appointment status code as issued by the backend.
type Status int

const (
	StatusUnknown   Status = 0
	StatusPending   Status = 1
	StatusScheduled Status = 2
	StatusCompleted Status = 3
	StatusCancelled Status = 4
	StatusRejected  Status = 5
)

// String returns the display name for the status, or "" when unknown.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusScheduled:
		return "Scheduled"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	case StatusRejected:
		return "Rejected"
	}
	return ""
}

// Terminal reports whether no further actions are ever offered for s.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// Action is a user-triggered appointment operation.
type Action string

const (
	ActionApprove    Action = "approve"
	ActionReject     Action = "reject"
	ActionCancel     Action = "cancel"
	ActionComplete   Action = "complete"
	ActionReschedule Action = "reschedule"
)

// transitions maps a status to the next status each legal action produces.
// Reschedule maps a status to itself: it rewrites the scheduled time only.
var transitions = map[Status]map[Action]Status{
	StatusPending: {
		ActionApprove:    StatusScheduled,
		ActionReject:     StatusRejected,
		ActionCancel:     StatusCancelled,
		ActionReschedule: StatusPending,
	},
	StatusScheduled: {
		ActionComplete:   StatusCompleted,
		ActionCancel:     StatusCancelled,
		ActionReschedule: StatusScheduled,
	},
}

// actionOrder fixes the order buttons render in, matching the dashboards.
var actionOrder = []Action{ActionApprove, ActionReject, ActionComplete, ActionReschedule, ActionCancel}

// AvailableActions returns the actions a screen should offer for a status.
// Terminal and unknown statuses get none.
func AvailableActions(s Status) []Action {
	edges := transitions[s]
	if len(edges) == 0 {
		return nil
	}
	out := make([]Action, 0, len(edges))
	for _, a := range actionOrder {
		if _, ok := edges[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Allows reports whether the action is legal from the status.
func Allows(s Status, a Action) bool {
	_, ok := transitions[s][a]
	return ok
}

// Next predicts the status the backend will report after a successful
// action. The caller must still refetch the authoritative record.
func Next(s Status, a Action) (Status, bool) {
	next, ok := transitions[s][a]
	return next, ok
}
