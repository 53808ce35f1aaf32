package config

const (
	DefaultDatabasePath = "./db/books.db"
	DefaultMongoURI     = "mongodb://localhost:27017"
)
