package models

// Event types published to the event stream.
const (
	EventUserRegistered      = "user.registered"
	EventLikeToggled         = "like.toggled"
	EventSubscriptionToggled = "subscription.toggled"
	EventCommentAdded        = "comment.added"
)

// Event is a domain event published after a successful write.
type Event struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	Timestamp  int64  `json:"timestamp"`
	ActorID    string `json:"actor_id"`
	TargetID   string `json:"target_id,omitempty"`
	TargetKind string `json:"target_kind,omitempty"`
	Active     *bool  `json:"active,omitempty"`
}
