package models

import "time"

// Deck represents the mazo table in the database. Creador is the joined
// creator username, null when the referenced user no longer exists.
type Deck struct {
	DeckID      int64     `json:"id_mazo"`
	Name        string    `json:"nombre_mazo"`
	Format      string    `json:"formato_mazo"`
	Description *string   `json:"descripcion_mazo"`
	CardCount   *int      `json:"cant_cartas"`
	Likes       *int      `json:"likes"`
	FechaSubida time.Time `json:"fecha_subida"`
	Creador     *string   `json:"creador"`
}
