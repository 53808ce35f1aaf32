package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookcatalog/internal/entities"
)

// Database is the relational store. It owns the book catalog and the audit
// event table; reviews live in the document store.
type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.AuditEvent{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateBook inserts a book and fills in the generated book_id.
func (d *Database) CreateBook(book *entities.Book) error {
	return d.DB.Create(book).Error
}

// GetAllBooks returns the whole catalog, newest first.
func (d *Database) GetAllBooks() ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := d.DB.Order("book_id DESC").Find(&books).Error
	return books, err
}

// SearchBooks matches a substring of title or author, case-insensitively,
// newest first.
func (d *Database) SearchBooks(query string) ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	searchPattern := "%" + query + "%"
	err := d.DB.
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", searchPattern, searchPattern).
		Order("book_id DESC").
		Find(&books).Error
	return books, err
}
