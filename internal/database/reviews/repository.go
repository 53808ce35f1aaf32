// Package reviews provides the document storage layer for book reviews.
//
// Reviews live in a MongoDB collection, keyed by store-assigned ObjectIDs.
// The connection is established lazily on first use and reused for the
// process lifetime; there is no pooling or transaction management beyond
// what the driver does internally.
package reviews

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mrlokans/bookcatalog/internal/entities"
)

// Repository stores reviews in a MongoDB collection.
type Repository struct {
	uri        string
	database   string
	collection string

	connectOnce sync.Once
	client      *mongo.Client
	connectErr  error
}

func NewRepository(uri, database, collection string) *Repository {
	return &Repository{
		uri:        uri,
		database:   database,
		collection: collection,
	}
}

// coll returns the reviews collection, connecting on first use. A failed
// connect is remembered and reported as a configuration error on every
// subsequent call; the process has to restart to retry.
func (r *Repository) coll(ctx context.Context) (*mongo.Collection, error) {
	r.connectOnce.Do(func() {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(r.uri))
		if err != nil {
			r.connectErr = fmt.Errorf("mongodb is not configured correctly: %w", err)
			return
		}
		r.client = client
	})
	if r.connectErr != nil {
		return nil, r.connectErr
	}
	return r.client.Database(r.database).Collection(r.collection), nil
}

// Insert saves a review, assigning its id and stamping review_date with the
// current UTC time.
func (r *Repository) Insert(ctx context.Context, review *entities.Review) error {
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	review.ReviewDate = &now

	result, err := coll.InsertOne(ctx, review)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		review.ID = id
	}
	return nil
}

// ListByBook returns the reviews for a book, newest first. Same-timestamp
// inserts tie-break on descending id, which keeps the order stable because
// ObjectIDs are monotonic within a process.
func (r *Repository) ListByBook(ctx context.Context, bookID int) ([]entities.Review, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "review_date", Value: -1},
		{Key: "_id", Value: -1},
	})
	cursor, err := coll.Find(ctx, bson.M{"book_id": bookID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]entities.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// DeleteByID removes a review. Returns false when no document matched.
func (r *Repository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return false, err
	}

	result, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// Ping checks connectivity for health reporting.
func (r *Repository) Ping(ctx context.Context) error {
	if _, err := r.coll(ctx); err != nil {
		return err
	}
	return r.client.Ping(ctx, nil)
}

// Close disconnects the client if a connection was ever established.
func (r *Repository) Close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Disconnect(ctx)
}
