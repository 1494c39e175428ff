package models

// CardDetail represents the detalle_carta table in the database.
type CardDetail struct {
	GameID    int64   `json:"id_juego"`
	Name      string  `json:"nombre_carta"`
	Abilities *string `json:"habilidades"`
	Rarity    *string `json:"rareza"`
	Artist    *string `json:"artista"`
	Type      *string `json:"tipo_principal"`
}

// CardFilter holds the optional substring filters for card search.
// Empty fields impose no predicate.
type CardFilter struct {
	Name   string `json:"nombre"`
	Type   string `json:"tipo"`
	Mana   string `json:"mana"`
	Rarity string `json:"rareza"`
}
