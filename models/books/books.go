package books

import (
	"context"
	"errors"
	"slices"

	serverError "github.com/supakorn-kn/go-book-crud/errors"
	"github.com/supakorn-kn/go-book-crud/models"
	"github.com/supakorn-kn/go-book-crud/mongodb"
	"github.com/supakorn-kn/go-book-crud/objects"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	titleIndex               = "title_1"
	genreAndPublicationIndex = "genre_1_publicationDate_1"
)

// titleCollation compares strings ignoring case, used for the duplicate title lookup.
var titleCollation = &options.Collation{Locale: "en", Strength: 2}

type BooksModel struct {
	models.BaseModel[objects.Book]
}

func NewBooksModel(ctx context.Context, conn *mongodb.MongoDBConn) (*BooksModel, error) {

	var model = new(BooksModel)

	coll, err := model.createCollection(ctx, conn)
	if err != nil {
		return nil, err
	}

	err = model.createIndexes(ctx, coll)
	if err != nil {
		return nil, err
	}

	err = model.Inject(coll)
	if err != nil {
		return nil, err
	}

	return model, nil
}

func (BooksModel) GetCollectionName() string {
	return "books"
}

func (m BooksModel) createCollection(ctx context.Context, conn *mongodb.MongoDBConn) (*mongo.Collection, error) {

	bookDB := conn.GetDatabase()
	collectionName := m.GetCollectionName()

	collectionNameList, err := bookDB.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	// title, author and genre are not required since an update may remove them
	validator := bson.D{
		{
			Key: "$jsonSchema", Value: bson.M{
				"bsonType": "object",
				"required": []string{"ISBN", "publicationDate"},
				"properties": bson.M{
					"title": bson.M{
						"bsonType":    "string",
						"description": "Title must be a string",
					},
					"author": bson.M{
						"bsonType":    "string",
						"description": "Author must be a string",
					},
					"genre": bson.M{
						"bsonType":    "string",
						"description": "Genre must be a string",
					},
					"ISBN": bson.M{
						"bsonType":    "string",
						"description": "ISBN must not be empty",
					},
					"publicationDate": bson.M{
						"bsonType":    "string",
						"description": "Publication date must not be empty",
					},
					"coverPhoto": bson.M{
						"bsonType": "object",
						"required": []string{"public_id", "image_url"},
						"properties": bson.M{
							"public_id": bson.M{"bsonType": "string"},
							"image_url": bson.M{"bsonType": "string"},
						},
						"description": "Cover photo must reference an uploaded image",
					},
				},
			},
		},
	}

	if slices.Contains(collectionNameList, collectionName) {

		cmd := bson.D{
			{Key: "collMod", Value: collectionName},
			{Key: "validator", Value: validator},
			{Key: "validationLevel", Value: "strict"},
		}

		if err := bookDB.RunCommand(ctx, cmd).Err(); err != nil {
			return nil, err
		}

		return conn.GetCollection(collectionName), nil
	}

	collectionOptions := options.CreateCollection()
	collectionOptions.SetValidator(validator)
	collectionOptions.SetValidationLevel("strict")

	err = bookDB.CreateCollection(ctx, collectionName, collectionOptions)
	if err != nil {
		return nil, err
	}

	return conn.GetCollection(collectionName), nil
}

func (m BooksModel) createIndexes(ctx context.Context, coll *mongo.Collection) error {

	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return err
	}

	var indexes []bson.M
	err = cur.All(ctx, &indexes)
	if err != nil {
		return err
	}

	contains := slices.ContainsFunc(indexes, func(m primitive.M) bool {
		return m["name"] == titleIndex
	})

	if !contains {

		indexModelOptions := options.Index().SetName(titleIndex).SetCollation(titleCollation)
		indexModel := mongo.IndexModel{
			Keys: bson.D{
				{Key: "title", Value: 1},
			},
			Options: indexModelOptions,
		}

		_, err = coll.Indexes().CreateOne(ctx, indexModel)
		if err != nil {
			return err
		}
	}

	contains = slices.ContainsFunc(indexes, func(m primitive.M) bool {
		return m["name"] == genreAndPublicationIndex
	})

	if !contains {

		indexModelOptions := options.Index().SetName(genreAndPublicationIndex)
		indexModel := mongo.IndexModel{
			Keys: bson.D{
				{Key: "genre", Value: 1},
				{Key: "publicationDate", Value: 1},
			},
			Options: indexModelOptions,
		}

		_, err = coll.Indexes().CreateOne(ctx, indexModel)
		if err != nil {
			return err
		}
	}

	return nil
}

func (m BooksModel) Insert(ctx context.Context, book objects.Book) (objects.Book, error) {

	book.ID = primitive.NilObjectID

	insertedID, err := m.BaseModel.Insert(ctx, book)
	if err != nil {
		return objects.Book{}, err
	}

	book.ID = insertedID

	return book, nil
}

func (m BooksModel) List(ctx context.Context) ([]objects.Book, error) {
	return m.BaseModel.Find(ctx, bson.D{})
}

func (m BooksModel) GetByID(ctx context.Context, bookID string) (objects.Book, error) {

	book, err := m.BaseModel.GetByID(ctx, bookID)
	if errors.Is(err, models.ErrNotFound) {
		return book, serverError.BookIDNotFoundError.New()
	}

	return book, err
}

// ExistsByTitle reports whether a book title equals title, ignoring case.
func (m BooksModel) ExistsByTitle(ctx context.Context, title string) (bool, error) {

	option := options.FindOne().SetCollation(titleCollation)

	_, err := m.BaseModel.FindOne(ctx, models.EqualMatchBson("title", title), option)
	if errors.Is(err, models.ErrNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

// FindOne returns the first book, in natural order, matching every filter field that is set.
func (m BooksModel) FindOne(ctx context.Context, filter objects.BookFilter) (objects.Book, error) {

	var conditions []bson.D

	if filter.PublicationDate != nil {
		conditions = append(conditions, models.EqualMatchBson("publicationDate", *filter.PublicationDate))
	}

	if filter.Genre != nil {
		conditions = append(conditions, models.EqualMatchBson("genre", *filter.Genre))
	}

	book, err := m.BaseModel.FindOne(ctx, models.AndMatchBson(conditions...))
	if errors.Is(err, models.ErrNotFound) {
		return book, serverError.BookNotFoundError.New()
	}

	return book, err
}

func (m BooksModel) Update(ctx context.Context, bookID string, change objects.BookChange) (objects.Book, error) {

	var fields bson.D

	if change.ReplaceText {
		fields = append(fields,
			bson.E{Key: "title", Value: valueOrNil(change.Title)},
			bson.E{Key: "author", Value: valueOrNil(change.Author)},
			bson.E{Key: "genre", Value: valueOrNil(change.Genre)},
		)
	}

	if change.CoverPhoto != nil {
		fields = append(fields, bson.E{Key: "coverPhoto", Value: change.CoverPhoto})
	}

	if len(fields) == 0 {
		return m.GetByID(ctx, bookID)
	}

	book, err := m.BaseModel.UpdateByID(ctx, bookID, models.SetBson(fields))
	if errors.Is(err, models.ErrNotFound) {
		return book, serverError.BookIDNotFoundError.New()
	}

	return book, err
}

func (m BooksModel) Delete(ctx context.Context, bookID string) (bool, error) {
	return m.BaseModel.DeleteByID(ctx, bookID)
}

func valueOrNil(value string) any {

	if value == "" {
		return nil
	}

	return value
}
