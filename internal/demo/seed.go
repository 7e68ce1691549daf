package demo

import (
	"context"
	"fmt"

	"github.com/mrlokans/bookexchange/internal/auth"
	"github.com/mrlokans/bookexchange/internal/database"
	"github.com/mrlokans/bookexchange/internal/entities"
)

// Credentials of the seeded demo client.
const (
	DemoCorreo   = "demo@libreria.cl"
	DemoPassword = "demo1234"
)

// Summary counts the records created by Seed.
type Summary struct {
	Clients   int
	Addresses int
	Authors   int
	Books     int
	Links     int
	Sales     int
}

type bookSeed struct {
	Book    entities.Book
	Authors []string
}

type saleSeed struct {
	Titulo          string
	TipoIntercambio string
	Precio          string
}

func sampleAuthors() []entities.Author {
	return []entities.Author{
		{Nombre: "Gabriela Mistral", Pais: "Chile"},
		{Nombre: "Pablo Neruda", Pais: "Chile"},
		{Nombre: "Isabel Allende", Pais: "Chile"},
		{Nombre: "Gabriel García Márquez", Pais: "Colombia"},
		{Nombre: "Miguel de Cervantes", Pais: "España"},
	}
}

func usedSchoolBook(titulo, aditorial, nivel, comentarios string) entities.Book {
	return entities.Book{
		Titulo:                 titulo,
		Aditorial:              aditorial,
		Nivel:                  nivel,
		Asignatura:             "Lenguaje",
		EstadoNuevoUsado:       "usado",
		CondicionOriginalCopia: "original",
		Comentarios:            comentarios,
	}
}

func sampleBooks() []bookSeed {
	return []bookSeed{
		{usedSchoolBook("Desolación", "Zig-Zag", "1° medio", "Tapas gastadas"), []string{"Gabriela Mistral"}},
		{usedSchoolBook("Veinte poemas de amor y una canción desesperada", "Pehuén", "2° medio", "Sin subrayar"), []string{"Pablo Neruda"}},
		{usedSchoolBook("La casa de los espíritus", "Sudamericana", "3° medio", "Algunas notas a lápiz"), []string{"Isabel Allende"}},
		{usedSchoolBook("Cien años de soledad", "Sudamericana", "4° medio", "Como nuevo"), []string{"Gabriel García Márquez"}},
		{usedSchoolBook("Don Quijote de la Mancha", "Santillana", "2° medio", "Edición escolar adaptada"), []string{"Miguel de Cervantes"}},
		{usedSchoolBook("Antología poética chilena", "Universitaria", "8° básico", "Incluye guía de lectura"), []string{"Gabriela Mistral", "Pablo Neruda"}},
	}
}

func sampleSales() []saleSeed {
	return []saleSeed{
		{Titulo: "Cien años de soledad", TipoIntercambio: "venta", Precio: "8000"},
		{Titulo: "Desolación", TipoIntercambio: "permuta", Precio: "0"},
	}
}

// Seed fills an empty database with a demo client, a small catalogue of
// books and authors, and a couple of sales. Everything is written in one
// transaction; any duplicate aborts the whole seed.
func Seed(ctx context.Context, db *database.Database, bcryptCost int) (*Summary, error) {
	passwordHash, err := auth.HashPassword(DemoPassword, bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	summary := &Summary{}
	err = db.Transaction(ctx, func(repos *database.Repositories) error {
		client := &entities.Client{
			NombreCompleto: "Cliente Demo",
			Correo:         DemoCorreo,
			Contrasenia:    passwordHash,
			Telefono:       "+56912345678",
		}
		if err := repos.Clients.Create(ctx, client); err != nil {
			return fmt.Errorf("client %s: %w", client.Correo, err)
		}
		summary.Clients++

		address := &entities.Address{
			ClienteID:    client.ID,
			Direccion:    "Avenida Providencia",
			Numero:       1234,
			Comuna:       "Providencia",
			TipoVivienda: "departamento",
			NumDepto:     "502",
		}
		if err := repos.Addresses.Create(ctx, address); err != nil {
			return fmt.Errorf("address: %w", err)
		}
		summary.Addresses++

		authorIDs := make(map[string]uint)
		for _, author := range sampleAuthors() {
			author := author
			if err := repos.Authors.Create(ctx, &author); err != nil {
				return fmt.Errorf("author %s: %w", author.Nombre, err)
			}
			authorIDs[author.Nombre] = author.ID
			summary.Authors++
		}

		bookIDs := make(map[string]uint)
		for _, seed := range sampleBooks() {
			book := seed.Book
			if err := repos.Books.Create(ctx, &book); err != nil {
				return fmt.Errorf("book %s: %w", book.Titulo, err)
			}
			bookIDs[book.Titulo] = book.ID
			summary.Books++

			for _, nombre := range seed.Authors {
				link := &entities.BookAuthor{AutorID: authorIDs[nombre], LibroID: book.ID}
				if err := repos.BookAuthors.Create(ctx, link); err != nil {
					return fmt.Errorf("link %s/%s: %w", nombre, book.Titulo, err)
				}
				summary.Links++
			}
		}

		for _, seed := range sampleSales() {
			sale := &entities.Sale{
				ClienteID:       client.ID,
				DireccionID:     address.ID,
				LibroID:         bookIDs[seed.Titulo],
				TipoIntercambio: seed.TipoIntercambio,
				Precio:          seed.Precio,
			}
			if err := repos.Sales.Create(ctx, sale); err != nil {
				return fmt.Errorf("sale of %s: %w", seed.Titulo, err)
			}
			summary.Sales++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
