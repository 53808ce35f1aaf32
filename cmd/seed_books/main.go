// Command seed_books populates a catalog database with a starter shelf.
// Usage: go run cmd/seed_books/main.go [-db path/to/books.db]
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

type seedBook struct {
	title  string
	author string
	year   int
	image  string
}

var starterShelf = []seedBook{
	{"Clean Code", "Robert C. Martin", 2008, "https://covers.openlibrary.org/b/isbn/9780132350884-L.jpg"},
	{"The Pragmatic Programmer", "Andrew Hunt; David Thomas", 1999, "https://covers.openlibrary.org/b/isbn/9780201616224-L.jpg"},
	{"Design Patterns", "Erich Gamma; Richard Helm; Ralph Johnson; John Vlissides", 1994, "https://covers.openlibrary.org/b/isbn/9780201633610-L.jpg"},
	{"Refactoring", "Martin Fowler", 1999, "https://covers.openlibrary.org/b/isbn/9780201485677-L.jpg"},
	{"Introduction to Algorithms", "Cormen; Leiserson; Rivest; Stein", 2009, "https://covers.openlibrary.org/b/isbn/9780262033848-L.jpg"},
	{"Code Complete", "Steve McConnell", 2004, "https://covers.openlibrary.org/b/isbn/9780735619678-L.jpg"},
	{"Cracking the Coding Interview", "Gayle Laakmann McDowell", 2015, "https://covers.openlibrary.org/b/isbn/9780984782857-L.jpg"},
	{"SICP", "Harold Abelson; Gerald Jay Sussman", 1996, "https://covers.openlibrary.org/b/isbn/9780262510875-L.jpg"},
	{"Working Effectively with Legacy Code", "Michael C. Feathers", 2004, "https://covers.openlibrary.org/b/isbn/9780131177055-L.jpg"},
	{"Head First Design Patterns", "Eric Freeman; Elisabeth Robson; Bert Bates; Kathy Sierra", 2004, "https://covers.openlibrary.org/b/isbn/9780596007126-L.jpg"},
}

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "path to the catalog database file")
	flag.Parse()

	if dir := filepath.Dir(*dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create database directory: %v", err)
		}
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	seeded := 0
	for _, s := range starterShelf {
		author := s.author
		year := s.year
		image := s.image
		book := &entities.Book{
			Title:           s.title,
			Author:          &author,
			PublicationYear: &year,
			ImageURL:        &image,
		}
		if err := db.CreateBook(book); err != nil {
			log.Printf("Failed to seed book %s: %v", s.title, err)
			continue
		}
		seeded++
	}

	log.Printf("Seeded %d books into %s", seeded, *dbPath)
}
