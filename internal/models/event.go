package models

// Post event types
const (
	PostCreated = "created"
	PostUpdated = "updated"
	PostDeleted = "deleted"
	PostLiked   = "liked"
)

// PostEvent is published after every successful post mutation
type PostEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Type      string `json:"type"`      // One of the post event types
	PostID    int64  `json:"post_id"`   // Affected post
	Username  string `json:"username"`  // Caller who performed the action
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
