package model

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type CreatePatientRequest struct {
	Name string `json:"name"`
}

type UpdatePatientRequest struct {
	Name string `json:"name"`
}
