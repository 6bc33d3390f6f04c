package models

import "time"

// Grade (note) is one mark on the 0-20 scale, attached to a student by id
// and to the grading teacher by username.
type Grade struct {
	ID      int64     `json:"id"`
	EleveID int64     `json:"eleveId" validate:"required"`
	Matiere string    `json:"matiere" validate:"required"`
	Devoir  string    `json:"devoir"`
	Note    float64   `json:"note" validate:"min=0,max=20"`
	ProfID  string    `json:"profId"`
	Date    time.Time `json:"date"`
}
