package models

import "time"

// Assignment (devoir) is homework published by a teacher for one class.
type Assignment struct {
	ID           int64     `json:"id"`
	Titre        string    `json:"titre" validate:"required"`
	Description  string    `json:"description,omitempty"`
	Matiere      string    `json:"matiere" validate:"required"`
	Classe       string    `json:"classe" validate:"required"`
	DateLimite   string    `json:"dateLimite" validate:"required,datetime=2006-01-02"`
	ProfID       string    `json:"profId"`
	DateCreation time.Time `json:"dateCreation"`
}
