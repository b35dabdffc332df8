package models

import "time"

// CompletedExercise, bir kullanıcının bir egzersizi tamamladığını kaydeder.
// CompletedAt server tarafından set edilir, istemciden alınmaz.
type CompletedExercise struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"userId"`
	ExerciseID  int64        `json:"exerciseId"`
	Duration    int64        `json:"duration"`
	CompletedAt time.Time    `json:"completedAt"`
	Exercise    *ExerciseRef `json:"exercise,omitempty"` // listede join ile dolar
}

// TrackInput, POST /users/track/:exerciseId gövdesinin doğrulanmış hali.
type TrackInput struct {
	Duration int64
}
