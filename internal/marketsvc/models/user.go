package models

import (
	"time"
)

// User represents the usuario table in the database.
type User struct {
	UserID        int64     `json:"id_usuario"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Phone         *string   `json:"tlf"`
	Country       *string   `json:"pais"`
	City          *string   `json:"ciudad"`
	Street        *string   `json:"calle"`
	FechaRegistro time.Time `json:"fecha_registro"`
}
