package http

import (
	"github.com/mrlokans/bookexchange/internal/entities"
	"github.com/mrlokans/bookexchange/internal/schema"
)

// Request payloads. Each declares its required fields in the order they are
// checked; lifecycle fields sent by the caller are ignored.

type registerRequest struct {
	Correo         string `json:"correo"`
	Contrasenia    string `json:"contrasenia"`
	NombreCompleto string `json:"nombreCompleto"`
	Telefono       string `json:"telefono"`
}

func (r *registerRequest) Rules() schema.Rules {
	return schema.Rules{
		schema.Required("correo", r.Correo, "correo es requerido"),
		schema.Required("contrasenia", r.Contrasenia, "contrasenia es requerida"),
		schema.Required("nombreCompleto", r.NombreCompleto, "Nombre Completo es requerido"),
		schema.Required("telefono", r.Telefono, "telefono es requerido"),
	}
}

type loginRequest struct {
	Correo      string `json:"correo"`
	Contrasenia string `json:"contrasenia"`
}

func (r *loginRequest) Rules() schema.Rules {
	return schema.Rules{
		schema.Required("correo", r.Correo, "correo es requerido"),
		schema.Required("contrasenia", r.Contrasenia, "contrasenia es requerido"),
	}
}

// clientUpdateRequest overwrites a client. The password is only changed
// when one is sent.
type clientUpdateRequest struct {
	NombreCompleto string `json:"nombreCompleto"`
	Correo         string `json:"correo"`
	Contrasenia    string `json:"contrasenia"`
	Telefono       string `json:"telefono"`
}

func (r *clientUpdateRequest) Rules() schema.Rules {
	return schema.Rules{
		schema.Required("correo", r.Correo, "correo es requerido"),
		schema.Required("nombreCompleto", r.NombreCompleto, "Nombre Completo es requerido"),
		schema.Required("telefono", r.Telefono, "telefono es requerido"),
	}
}

type addressRequest struct {
	ClienteID    uint   `json:"cliente_id"`
	Direccion    string `json:"direccion"`
	Numero       int    `json:"numero"`
	Comuna       string `json:"comuna"`
	TipoVivienda string `json:"tipoVivienda"`
	NumDepto     string `json:"numDepto"`
}

func (r *addressRequest) Rules() schema.Rules {
	return schema.Rules{
		schema.Required("cliente_id", r.ClienteID, "cliente_id es requerido"),
		schema.Required("direccion", r.Direccion, "direccion es requerida"),
		schema.Required("numero", r.Numero, "numero es requerido"),
		schema.Required("comuna", r.Comuna, "comuna es requerido"),
		schema.Required("tipoVivienda", r.TipoVivienda, "tipoVivienda es requerido"),
		schema.Required("numDepto", r.NumDepto, "numDepto es requerido"),
	}
}

func (r *addressRequest) apply(a *entities.Address) {
	a.ClienteID = r.ClienteID
	a.Direccion = r.Direccion
	a.Numero = r.Numero
	a.Comuna = r.Comuna
	a.TipoVivienda = r.TipoVivienda
	a.NumDepto = r.NumDepto
}

type authorRequest struct {
	Nombre string `json:"nombre"`
	Pais   string `json:"pais"`
}

func (r *authorRequest) Rules() schema.Rules {
	return schema.Rules{
		schema.Required("nombre", r.Nombre, "nombre es requerido"),
		schema.Required("pais", r.Pais, "pais es requerido"),
	}
}

func (r *authorRequest) apply(a *entities.Author) {
	a.Nombre = r.Nombre
	a.Pais = r.Pais
}

type bookRequest struct {
	Titulo                 string `json:"titulo"`
	Aditorial              string `json:"aditorial"`
	Nivel                  string `json:"nivel"`
	Asignatura             string `json:"asignatura"`
	EstadoNuevoUsado       string `json:"estadoNuevoUsado"`
	CondicionOriginalCopia string `json:"condicionOriginalCopia"`
	Comentarios            string `json:"comentarios"`
}

func (r *bookRequest) Rules() schema.Rules {
	return schema.Rules{
		schema.Required("titulo", r.Titulo, "titulo es requerido"),
		schema.Required("aditorial", r.Aditorial, "aditorial es requerida"),
		schema.Required("nivel", r.Nivel, "nivel es requerido"),
		schema.Required("asignatura", r.Asignatura, "asignatura es requerida"),
		schema.Required("estadoNuevoUsado", r.EstadoNuevoUsado, "estadoNuevoUsado es requerido"),
		schema.Required("condicionOriginalCopia", r.CondicionOriginalCopia, "condicionOriginalCopia es requerida"),
		schema.Required("comentarios", r.Comentarios, "comentarios es requerido"),
	}
}

func (r *bookRequest) apply(b *entities.Book) {
	b.Titulo = r.Titulo
	b.Aditorial = r.Aditorial
	b.Nivel = r.Nivel
	b.Asignatura = r.Asignatura
	b.EstadoNuevoUsado = r.EstadoNuevoUsado
	b.CondicionOriginalCopia = r.CondicionOriginalCopia
	b.Comentarios = r.Comentarios
}

type bookAuthorRequest struct {
	AutorID uint `json:"autor_id"`
	LibroID uint `json:"libro_id"`
}

func (r *bookAuthorRequest) Rules() schema.Rules {
	return schema.Rules{
		schema.Required("autor_id", r.AutorID, "autor_id es requerido"),
		schema.Required("libro_id", r.LibroID, "libro_id es requerido"),
	}
}

type saleRequest struct {
	ClienteID       uint   `json:"cliente_id"`
	DireccionID     uint   `json:"direccion_id"`
	LibroID         uint   `json:"libro_id"`
	TipoIntercambio string `json:"tipoIntercambio"`
	Precio          string `json:"precio"`
}

func (r *saleRequest) Rules() schema.Rules {
	return schema.Rules{
		schema.Required("cliente_id", r.ClienteID, "cliente_id es requerido"),
		schema.Required("direccion_id", r.DireccionID, "direccion_id es requerido"),
		schema.Required("libro_id", r.LibroID, "libro_id es requerido"),
		schema.Required("tipoIntercambio", r.TipoIntercambio, "tipoIntercambio es requerido"),
		schema.Required("precio", r.Precio, "precio es requerido"),
	}
}

func (r *saleRequest) apply(s *entities.Sale) {
	s.ClienteID = r.ClienteID
	s.DireccionID = r.DireccionID
	s.LibroID = r.LibroID
	s.TipoIntercambio = r.TipoIntercambio
	s.Precio = r.Precio
}
