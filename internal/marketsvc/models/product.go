package models

import "github.com/shopspring/decimal"

// Product represents the productos table in the database.
type Product struct {
	ProductID   int64           `json:"id_productos"`
	Description string          `json:"descr_producto"`
	Cost        decimal.Decimal `json:"coste_producto"`
	IsCard      bool            `json:"es_carta"`
}
