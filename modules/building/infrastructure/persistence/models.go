package persistence

import (
	"time"

	"github.com/google/uuid"
)

type Building struct {
	SID       uuid.UUID
	Address   string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
