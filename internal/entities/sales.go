package entities

// Sale records a sale or exchange of a book by a client, shipped to one of
// the client's addresses.
type Sale struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	ClienteID       uint   `gorm:"column:cliente_id;not null;index" json:"cliente_id"`
	DireccionID     uint   `gorm:"column:direccion_id;not null;index" json:"direccion_id"`
	LibroID         uint   `gorm:"column:libro_id;not null;index" json:"libro_id"`
	TipoIntercambio string `gorm:"column:tipoIntercambio;size:100;not null" json:"tipoIntercambio"`
	Precio          string `gorm:"column:precio;size:100;not null" json:"precio"`
	Lifecycle
}

func (Sale) TableName() string {
	return "ventaPermuta"
}
