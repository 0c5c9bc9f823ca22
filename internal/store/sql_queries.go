package store

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-bookshelf/models"
)

const (
	userTable = `"User"`
	bookTable = `"Book"`
)

var (
	userColumns = []string{"id", "name", "email", "password", "location", "title", "user_id"}
	bookColumns = []string{"id", "title", "message", "owner_id"}

	bookWithOwnerColumns = []string{
		"b.id", "b.title", "b.message", "b.owner_id",
		"u.id AS owner_pk",
		"u.name AS owner_name",
		"u.email AS owner_email",
		"u.location AS owner_location",
		"u.title AS owner_title",
		"u.user_id AS owner_user_id",
	}
)

// userRow is the row shape of the "User" table.
type userRow struct {
	ID       string         `db:"id"`
	Name     string         `db:"name"`
	Email    string         `db:"email"`
	Password string         `db:"password"`
	Location string         `db:"location"`
	Title    string         `db:"title"`
	UserID   sql.NullString `db:"user_id"`
}

func (r userRow) toModel() models.User {
	return models.User{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Location: r.Location,
		Title:    r.Title,
		UserID:   r.UserID.String,
	}
}

// bookRow is the row shape of the "Book" table.
type bookRow struct {
	ID      string `db:"id"`
	Title   string `db:"title"`
	Message string `db:"message"`
	OwnerID string `db:"owner_id"`
}

func (r bookRow) toModel() models.Book {
	return models.Book{
		ID:      r.ID,
		Title:   r.Title,
		Message: r.Message,
		OwnerID: r.OwnerID,
	}
}

// bookWithOwnerRow is one row of the Book LEFT JOIN User query. Owner
// columns are NULL when owner_id matches no user.
type bookWithOwnerRow struct {
	bookRow
	OwnerPK       sql.NullString `db:"owner_pk"`
	OwnerName     sql.NullString `db:"owner_name"`
	OwnerEmail    sql.NullString `db:"owner_email"`
	OwnerLocation sql.NullString `db:"owner_location"`
	OwnerTitle    sql.NullString `db:"owner_title"`
	OwnerUserID   sql.NullString `db:"owner_user_id"`
}

func (r bookWithOwnerRow) toModel() models.BookWithOwner {
	result := models.BookWithOwner{Book: r.bookRow.toModel()}
	if r.OwnerPK.Valid {
		result.Owner = &models.User{
			ID:       r.OwnerPK.String,
			Name:     r.OwnerName.String,
			Email:    r.OwnerEmail.String,
			Location: r.OwnerLocation.String,
			Title:    r.OwnerTitle.String,
			UserID:   r.OwnerUserID.String,
		}
	}
	return result
}

func buildInsertUserQuery(sb squirrel.StatementBuilderType, row userRow) (string, []any, error) {
	return sb.Insert(userTable).
		Columns(userColumns...).
		Values(row.ID, row.Name, row.Email, row.Password, row.Location, row.Title, row.UserID).
		ToSql()
}

func buildSelectUserByIDQuery(sb squirrel.StatementBuilderType, id string) (string, []any, error) {
	return sb.Select(userColumns...).
		From(userTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// buildUpdateUserQuery replaces the mutable user fields. An empty password
// keeps the stored hash.
func buildUpdateUserQuery(sb squirrel.StatementBuilderType, id string, user models.User) (string, []any, error) {
	query := sb.Update(userTable).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("location", user.Location).
		Set("title", user.Title)
	if user.Password != "" {
		query = query.Set("password", user.Password)
	}

	return query.Where(squirrel.Eq{"id": id}).ToSql()
}

func buildDeleteUserQuery(sb squirrel.StatementBuilderType, id string) (string, []any, error) {
	return sb.Delete(userTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func buildSelectUsersQuery(sb squirrel.StatementBuilderType) (string, []any, error) {
	return sb.Select(userColumns...).
		From(userTable).
		ToSql()
}

func buildInsertBookQuery(sb squirrel.StatementBuilderType, row bookRow) (string, []any, error) {
	return sb.Insert(bookTable).
		Columns(bookColumns...).
		Values(row.ID, row.Title, row.Message, row.OwnerID).
		ToSql()
}

// buildSelectBooksByTitlesQuery renders title IN (...). squirrel turns an
// empty slice into a false predicate.
func buildSelectBooksByTitlesQuery(sb squirrel.StatementBuilderType, titles []string) (string, []any, error) {
	return sb.Select(bookColumns...).
		From(bookTable).
		Where(squirrel.Eq{"title": titles}).
		ToSql()
}

func buildSelectBooksWithOwnerQuery(sb squirrel.StatementBuilderType) (string, []any, error) {
	return sb.Select(bookWithOwnerColumns...).
		From(bookTable + " AS b").
		LeftJoin(userTable + " AS u ON u.user_id = b.owner_id").
		ToSql()
}
