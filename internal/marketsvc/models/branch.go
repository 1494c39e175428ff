package models

// Branch represents the sucursal table in the database.
type Branch struct {
	BranchID int64   `json:"id_sucursal"`
	Country  string  `json:"pais"`
	City     string  `json:"ciudad"`
	Street   *string `json:"calle"`
	Phone    *string `json:"telefono"`
}
