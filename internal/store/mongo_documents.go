package store

import (
	"github.com/MKhiriev/go-bookshelf/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userDocument is the BSON shape of a document in the "User" collection.
type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	Location string             `bson:"location"`
	Title    string             `bson:"title"`
	UserID   primitive.ObjectID `bson:"user_id,omitempty"`
}

func (d userDocument) toModel() models.User {
	user := models.User{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Email:    d.Email,
		Password: d.Password,
		Location: d.Location,
		Title:    d.Title,
	}
	if !d.UserID.IsZero() {
		user.UserID = d.UserID.Hex()
	}
	return user
}

// bookDocument is the BSON shape of a document in the "Book" collection.
type bookDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Title   string             `bson:"title"`
	Message string             `bson:"message"`
	OwnerID primitive.ObjectID `bson:"owner_id"`
}

func (d bookDocument) toModel() models.Book {
	return models.Book{
		ID:      d.ID.Hex(),
		Title:   d.Title,
		Message: d.Message,
		OwnerID: d.OwnerID.Hex(),
	}
}

// bookWithOwnerDocument is one result of the Book → User $lookup stage.
type bookWithOwnerDocument struct {
	Book  bookDocument   `bson:",inline"`
	Owner []userDocument `bson:"owner"`
}

func (d bookWithOwnerDocument) toModel() models.BookWithOwner {
	result := models.BookWithOwner{Book: d.Book.toModel()}
	if len(d.Owner) > 0 {
		owner := d.Owner[0].toModel()
		result.Owner = &owner
	}
	return result
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidIdentifier
	}
	return oid, nil
}
