package entities

import "time"

type Status string

const (
	StatusActive  Status = "activo"
	StatusDeleted Status = "borrado"
)

// Lifecycle is embedded by every record that supports soft deletion.
// Dates are calendar dates; only the day component is meaningful.
type Lifecycle struct {
	Estado        Status     `gorm:"column:estado;size:100;not null;index" json:"estado"`
	FCreacion     *time.Time `gorm:"column:f_creacion;type:date" json:"f_creacion"`
	FModificacion *time.Time `gorm:"column:f_modificacion;type:date" json:"f_modificacion"`
	FEliminacion  *time.Time `gorm:"column:f_eliminacion;type:date" json:"f_eliminacion"`
}

// Life gives generic repositories access to the embedded lifecycle block.
func (l *Lifecycle) Life() *Lifecycle {
	return l
}

func (l Lifecycle) IsDeleted() bool {
	return l.Estado == StatusDeleted
}

// Today returns the current date at UTC midnight.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
