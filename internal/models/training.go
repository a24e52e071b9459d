package models

import (
	"time"

	"github.com/google/uuid"
)

// Training categories shared by trainings and training types.
const (
	CategoryCardio      = "cardio"
	CategoryStrength    = "strength"
	CategoryFlexibility = "flexibility"
	CategoryOther       = "other"
)

// ValidCategory reports whether c is one of the supported categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryCardio, CategoryStrength, CategoryFlexibility, CategoryOther:
		return true
	}
	return false
}

// Training is a workout owned by a single user.
type Training struct {
	TrainingID  uuid.UUID      `json:"_id" db:"id"`
	UserID      uuid.UUID      `json:"user" db:"user_id"` // Owner, set on creation and never changed
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Category    string         `json:"type" db:"category"`
	Duration    int            `json:"duration" db:"duration"` // Minutes
	Date        time.Time      `json:"date" db:"date"`
	Types       []TrainingType `json:"types" db:"-"` // Populated from training_type_refs in insertion order
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

// TrainingType is an exercise kind attached to a training.
type TrainingType struct {
	TrainingTypeID uuid.UUID `json:"_id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Category       string    `json:"type" db:"category"`
	Repetitions    int       `json:"repetitions" db:"repetitions"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// TrainingPatch carries the fields of a partial training update. Nil means unchanged.
type TrainingPatch struct {
	Title       *string
	Description *string
	Category    *string
	Duration    *int
	Date        *time.Time
}
