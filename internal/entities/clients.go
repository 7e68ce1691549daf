package entities

type Client struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	NombreCompleto string `gorm:"column:nombreCompleto;size:100;not null" json:"nombreCompleto"`
	Correo         string `gorm:"column:correo;size:100;not null;index" json:"correo"`
	Contrasenia    string `gorm:"column:contrasenia;size:100;not null" json:"-"` // bcrypt hash, never serialized
	Telefono       string `gorm:"column:telefono;size:20;not null" json:"telefono"`
	Lifecycle
}

func (Client) TableName() string {
	return "clientes"
}

// Address is a client's delivery address. A client has at most one.
type Address struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ClienteID    uint   `gorm:"column:cliente_id;not null;index" json:"cliente_id"`
	Direccion    string `gorm:"column:direccion;size:100;not null" json:"direccion"`
	Numero       int    `gorm:"column:numero;not null" json:"numero"`
	Comuna       string `gorm:"column:comuna;size:100;not null" json:"comuna"`
	TipoVivienda string `gorm:"column:tipoVivienda;size:20;not null" json:"tipoVivienda"`
	NumDepto     string `gorm:"column:numDepto;size:20;not null" json:"numDepto"`
	Lifecycle
}

func (Address) TableName() string {
	return "direcciones"
}
