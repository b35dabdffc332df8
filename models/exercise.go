package models

import "time"

// Difficulty, egzersiz zorluk seviyesini temsil eder.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Valid, zorluğun tanımlı enum değerlerinden biri olup olmadığını kontrol eder.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Exercise, katalogdaki bir egzersizi temsil eder.
// ProgramID nullable'dır — egzersiz en fazla bir programa ait olabilir.
type Exercise struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Difficulty Difficulty  `json:"difficulty"`
	ProgramID  *int64      `json:"programID"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	Program    *ProgramRef `json:"program,omitempty"` // listelerde join ile dolar
}

// ExerciseRestricted, program ilişkilendirme yanıtında dönen kısıtlı temsil.
type ExerciseRestricted struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Difficulty Difficulty `json:"difficulty"`
	ProgramID  *int64     `json:"programID"`
}

// ExerciseRef, başka bir kaydın içine gömülen {id, name} temsili.
type ExerciseRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ExerciseUpsert, create/update isteklerinin doğrulanmış gövdesi.
// ProgramID şemada pozitif sayı olarak zorunludur; programdan çıkarma
// ayrı bir endpoint ile yapılır.
type ExerciseUpsert struct {
	Name       string
	Difficulty Difficulty
	ProgramID  int64
}

// ListExercisesQuery, GET /exercises sorgusunun doğrulanmış hali.
// Page ve Limit parse sırasında varsayılanlarını almıştır (1 ve 10).
type ListExercisesQuery struct {
	Page      int
	Limit     int
	ProgramID *int64 // nil → filtre yok
	Search    string // boş → filtre yok; case-insensitive substring
}
