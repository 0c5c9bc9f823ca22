package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoBookRepository is the MongoDB-backed implementation of
// [BookRepository] working on the "Book" collection.
type mongoBookRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

func NewMongoBookRepository(coll *mongo.Collection, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating mongo book repository")
	return &mongoBookRepository{
		coll:   coll,
		logger: logger,
	}
}

func (r *mongoBookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	ownerID, err := parseObjectID(book.OwnerID)
	if err != nil {
		return models.Book{}, err
	}

	doc := bookDocument{
		ID:      primitive.NewObjectID(),
		Title:   book.Title,
		Message: book.Message,
		OwnerID: ownerID,
	}

	if _, err = r.coll.InsertOne(ctx, doc); err != nil {
		log.Err(err).Str("func", "*mongoBookRepository.CreateBook").Msg("error inserting book")
		if mongo.IsDuplicateKeyError(err) {
			return models.Book{}, ErrDuplicateID
		}
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return doc.toModel(), nil
}

func (r *mongoBookRepository) FindBooksByTitles(ctx context.Context, titles []string) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.coll.Find(ctx, bson.M{"title": bson.M{"$in": titles}})
	if err != nil {
		log.Err(err).Str("func", "*mongoBookRepository.FindBooksByTitles").Strs("titles", titles).Msg("error finding books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []bookDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoBookRepository.FindBooksByTitles").Msg("error decoding books")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	books := make([]models.Book, 0, len(docs))
	for _, doc := range docs {
		books = append(books, doc.toModel())
	}

	return books, nil
}

// ListBooksWithOwner joins Book.owner_id to User.user_id with a $lookup
// stage. The stage yields an array; only its first element is kept.
func (r *mongoBookRepository) ListBooksWithOwner(ctx context.Context) ([]models.BookWithOwner, error) {
	log := logger.FromContext(ctx)

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: userCollection},
			{Key: "localField", Value: "owner_id"},
			{Key: "foreignField", Value: "user_id"},
			{Key: "as", Value: "owner"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		log.Err(err).Str("func", "*mongoBookRepository.ListBooksWithOwner").Msg("error aggregating books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []bookWithOwnerDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoBookRepository.ListBooksWithOwner").Msg("error decoding books")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	books := make([]models.BookWithOwner, 0, len(docs))
	for _, doc := range docs {
		books = append(books, doc.toModel())
	}

	return books, nil
}
