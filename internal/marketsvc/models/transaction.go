package models

import "time"

// Transaction represents the transaccion table in the database. Emisor and
// Receptor are the joined sender/receiver usernames, null-tolerant.
type Transaction struct {
	RefMovimiento int64     `json:"ref_movimiento"`
	Type          string    `json:"tipo_transaccion"`
	SenderID      int64     `json:"id_emisor,omitempty"`
	ReceiverID    int64     `json:"id_receptor,omitempty"`
	Quantity      int       `json:"cantidad_productos"`
	Token         *string   `json:"token_transaccion"`
	Fecha         time.Time `json:"fecha_transaccion"`
	Emisor        *string   `json:"emisor"`
	Receptor      *string   `json:"receptor"`
}
