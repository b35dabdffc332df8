package models

import "time"

// Program, egzersizleri gruplayan isimli bir antrenman programıdır.
// Bir programın birden çok egzersizi olabilir (one-to-many).
type Program struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProgramRef, egzersizin içine gömülen {id, name} temsili.
type ProgramRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
