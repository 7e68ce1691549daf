package entities

type Book struct {
	ID                     uint   `gorm:"primaryKey" json:"id"`
	Titulo                 string `gorm:"column:titulo;size:100;not null;index" json:"titulo"`
	Aditorial              string `gorm:"column:aditorial;size:100;not null" json:"aditorial"` // publisher
	Nivel                  string `gorm:"column:nivel;size:100;not null" json:"nivel"`
	Asignatura             string `gorm:"column:asignatura;size:100;not null" json:"asignatura"`
	EstadoNuevoUsado       string `gorm:"column:estadoNuevoUsado;size:100;not null" json:"estadoNuevoUsado"`
	CondicionOriginalCopia string `gorm:"column:condicionOriginalCopia;size:100;not null" json:"condicionOriginalCopia"`
	Comentarios            string `gorm:"column:comentarios;size:100;not null" json:"comentarios"`
	Lifecycle
}

func (Book) TableName() string {
	return "libros"
}

type Author struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"column:nombre;size:100;not null;index" json:"nombre"`
	Pais   string `gorm:"column:pais;size:100;not null" json:"pais"`
	Lifecycle
}

func (Author) TableName() string {
	return "autores"
}

// BookAuthor links an author to a book. The pair is the primary key.
type BookAuthor struct {
	AutorID uint `gorm:"column:autor_id;primaryKey;autoIncrement:false" json:"autor_id"`
	LibroID uint `gorm:"column:libro_id;primaryKey;autoIncrement:false" json:"libro_id"`
	Lifecycle
}

func (BookAuthor) TableName() string {
	return "libroAutor"
}
