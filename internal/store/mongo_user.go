package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoUserRepository is the MongoDB-backed implementation of
// [UserRepository] working on the "User" collection.
type mongoUserRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

func NewMongoUserRepository(coll *mongo.Collection, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		coll:   coll,
		logger: logger,
	}
}

// CreateUser generates the ObjectID before the insert and stores it in both
// _id and user_id.
func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	id := primitive.NewObjectID()
	doc := userDocument{
		ID:       id,
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
		Location: user.Location,
		Title:    user.Title,
		UserID:   id,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrDuplicateID
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return doc.toModel(), nil
}

func (r *mongoUserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	oid, err := parseObjectID(id)
	if err != nil {
		return models.User{}, err
	}

	var doc userDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.GetUserByID").Str("id", id).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *mongoUserRepository) UpdateUser(ctx context.Context, id string, user models.User) (models.UpdateResult, error) {
	log := logger.FromContext(ctx)

	oid, err := parseObjectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, userUpdate(user))
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.UpdateUser").Str("id", id).Msg("error updating user")
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (r *mongoUserRepository) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	log := logger.FromContext(ctx)

	oid, err := parseObjectID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.DeleteUser").Str("id", id).Msg("error deleting user")
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *mongoUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []userDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.ListUsers").Msg("error decoding users")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toModel())
	}

	return users, nil
}

// userUpdate builds the $set document for UpdateUser. An empty password
// keeps the stored hash.
func userUpdate(user models.User) bson.M {
	set := bson.M{
		"name":     user.Name,
		"email":    user.Email,
		"location": user.Location,
		"title":    user.Title,
	}
	if user.Password != "" {
		set["password"] = user.Password
	}
	return bson.M{"$set": set}
}
