package entities

// Book is a catalog entry in the relational store. book_id is assigned by the
// database and strictly increasing, so "newest first" is a book_id sort.
// The nullable columns stay pointers so absent values serialize as JSON null.
type Book struct {
	BookID          int     `gorm:"primaryKey;autoIncrement;column:book_id" json:"book_id"`
	Title           string  `gorm:"index;size:512;not null" json:"title"`
	PublicationYear *int    `json:"publication_year"`
	Author          *string `gorm:"index;size:256" json:"author"`
	ImageURL        *string `gorm:"size:2048;column:image_url" json:"image_url"`
}

func (Book) TableName() string {
	return "books"
}
