package models

// Training event types published to the message broker.
const (
	EventTrainingCreated   = "training.created"
	EventTrainingUpdated   = "training.updated"
	EventTrainingDeleted   = "training.deleted"
	EventTrainingTypeAdded = "training.type_added"
)

// TrainingEvent describes a change to a training, keyed by the training ID.
type TrainingEvent struct {
	EventID        string `json:"event_id"`                   // Unique identifier of the event
	Type           string `json:"type"`                       // One of the Event* constants
	TrainingID     string `json:"training_id"`                // Training the event refers to
	TrainingTypeID string `json:"training_type_id,omitempty"` // Set for type-related events
	UserID         string `json:"user_id"`                    // Owner of the training
	Timestamp      int64  `json:"timestamp"`                  // Unix seconds
}
