package books

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	serverError "github.com/supakorn-kn/go-book-crud/errors"
	"github.com/supakorn-kn/go-book-crud/objects"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Insert(ctx context.Context, book objects.Book) (objects.Book, error) {
	args := m.Called(ctx, book)
	return args.Get(0).(objects.Book), args.Error(1)
}

func (m *mockStore) List(ctx context.Context) ([]objects.Book, error) {
	args := m.Called(ctx)
	return args.Get(0).([]objects.Book), args.Error(1)
}

func (m *mockStore) GetByID(ctx context.Context, bookID string) (objects.Book, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).(objects.Book), args.Error(1)
}

func (m *mockStore) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) FindOne(ctx context.Context, filter objects.BookFilter) (objects.Book, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(objects.Book), args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, bookID string, change objects.BookChange) (objects.Book, error) {
	args := m.Called(ctx, bookID, change)
	return args.Get(0).(objects.Book), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, bookID string) (bool, error) {
	args := m.Called(ctx, bookID)
	return args.Bool(0), args.Error(1)
}

type mockAssetHost struct {
	mock.Mock
}

func (m *mockAssetHost) Upload(ctx context.Context, localPath string) (objects.CoverPhoto, error) {
	args := m.Called(ctx, localPath)
	return args.Get(0).(objects.CoverPhoto), args.Error(1)
}

func (m *mockAssetHost) Destroy(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

type BooksServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *mockStore
	assets  *mockAssetHost
	service *BooksService
}

func (s *BooksServiceTestSuite) SetupSubTest() {

	s.ctx = context.Background()
	s.store = new(mockStore)
	s.assets = new(mockAssetHost)

	s.service = NewBooksService(s.store, s.assets, zap.NewNop())
	s.service.now = func() time.Time { return time.Date(2024, time.May, 20, 10, 0, 0, 0, time.UTC) }
	s.service.isbn = func() string { return "ISBN 12-3-456-789-1" }
}

func (s *BooksServiceTestSuite) TearDownSubTest() {

	s.store.AssertExpectations(s.T())
	s.assets.AssertExpectations(s.T())
}

func (s *BooksServiceTestSuite) TestCreate() {

	s.Run("Should normalize fields, upload cover photo and remove temp file", func() {

		coverPath := tempCoverPhoto(s)
		coverPhoto := fakeCoverPhoto()

		s.store.On("ExistsByTitle", s.ctx, "space odyssey").Return(false, nil).Once()
		s.assets.On("Upload", s.ctx, coverPath).Return(coverPhoto, nil).Once().
			Run(func(mock.Arguments) {
				s.Require().FileExists(coverPath, "Temp file should still exist while uploading")
			})

		expected := objects.Book{
			Title:           "Space Odyssey",
			Author:          "Arthur Clarke",
			Genre:           "Science Fiction",
			ISBN:            "ISBN 12-3-456-789-1",
			PublicationDate: "2024",
			CoverPhoto:      &coverPhoto,
		}

		inserted := expected
		inserted.ID = primitive.NewObjectID()
		s.store.On("Insert", s.ctx, expected).Return(inserted, nil).Once()

		actual, err := s.service.Create(s.ctx, CreateBookInput{
			Title:          "space odyssey",
			Author:         "arthur clarke",
			Genre:          "science fiction",
			CoverPhotoPath: coverPath,
		})
		s.Require().NoError(err)
		s.Require().Equal(inserted, actual)
		s.Require().NoFileExists(coverPath)
	})

	s.Run("Should throw error when title already exists ignoring case", func() {

		s.store.On("ExistsByTitle", s.ctx, "the great escape").Return(true, nil).Once()

		_, err := s.service.Create(s.ctx, CreateBookInput{
			Title:          "The Great Escape",
			Author:         "paul brickhill",
			Genre:          "history",
			CoverPhotoPath: "unused.png",
		})
		s.Require().True(serverError.IsError(err, serverError.DuplicateTitleError.New("The Great Escape")))
		s.assets.AssertNotCalled(s.T(), "Upload", mock.Anything, mock.Anything)
	})

	s.Run("Should throw error without persisting when cover photo is missing", func() {

		s.store.On("ExistsByTitle", s.ctx, "space odyssey").Return(false, nil).Once()

		_, err := s.service.Create(s.ctx, CreateBookInput{Title: "space odyssey", Author: "arthur clarke", Genre: "science fiction"})
		s.Require().True(serverError.IsCode(err, serverError.ValidationErrorCode))
		s.store.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
		s.assets.AssertNotCalled(s.T(), "Upload", mock.Anything, mock.Anything)
	})

	s.Run("Should not persist book when upload fails", func() {

		coverPath := tempCoverPhoto(s)

		s.store.On("ExistsByTitle", s.ctx, "space odyssey").Return(false, nil).Once()
		s.assets.On("Upload", s.ctx, coverPath).Return(objects.CoverPhoto{}, errors.New("upload failed")).Once()

		_, err := s.service.Create(s.ctx, CreateBookInput{Title: "space odyssey", Author: "arthur clarke", Genre: "science fiction", CoverPhotoPath: coverPath})
		s.Require().EqualError(err, "upload failed")
		s.store.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
	})

	s.Run("Should fail request when temp file cannot be removed", func() {

		s.service.removeFile = func(string) error { return errors.New("permission denied") }

		s.store.On("ExistsByTitle", s.ctx, "space odyssey").Return(false, nil).Once()
		s.assets.On("Upload", s.ctx, "cover.png").Return(fakeCoverPhoto(), nil).Once()

		_, err := s.service.Create(s.ctx, CreateBookInput{Title: "space odyssey", Author: "arthur clarke", Genre: "science fiction", CoverPhotoPath: "cover.png"})
		s.Require().EqualError(err, "permission denied")
		s.assets.AssertNotCalled(s.T(), "Destroy", mock.Anything, mock.Anything)
		s.store.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
	})
}

func (s *BooksServiceTestSuite) TestQueries() {

	book := fakeBook()

	s.Run("Should list every book", func() {

		s.store.On("List", s.ctx).Return([]objects.Book{book}, nil).Once()

		actual, err := s.service.List(s.ctx)
		s.Require().NoError(err)
		s.Require().Equal([]objects.Book{book}, actual)
	})

	s.Run("Should find by normalized genre", func() {

		genre := "Science Fiction"
		s.store.On("FindOne", s.ctx, objects.BookFilter{Genre: &genre}).Return(book, nil).Once()

		actual, err := s.service.GetByGenre(s.ctx, "science FICTION")
		s.Require().NoError(err)
		s.Require().Equal(book, actual)
	})

	s.Run("Should find by publication year", func() {

		year := "2024"
		s.store.On("FindOne", s.ctx, objects.BookFilter{PublicationDate: &year}).Return(book, nil).Once()

		actual, err := s.service.GetByYear(s.ctx, "2024")
		s.Require().NoError(err)
		s.Require().Equal(book, actual)
	})

	s.Run("Should find by publication year and normalized genre", func() {

		year, genre := "2024", "Horror"
		s.store.On("FindOne", s.ctx, objects.BookFilter{PublicationDate: &year, Genre: &genre}).
			Return(objects.Book{}, serverError.BookNotFoundError.New()).Once()

		_, err := s.service.GetByYearAndGenre(s.ctx, "2024", "horror")
		s.Require().True(serverError.IsError(err, serverError.BookNotFoundError.New()))
	})

	s.Run("Should pass not found error from store", func() {

		s.store.On("GetByID", s.ctx, "missing").Return(objects.Book{}, serverError.BookIDNotFoundError.New()).Once()

		_, err := s.service.GetByID(s.ctx, "missing")
		s.Require().True(serverError.IsCode(err, serverError.BookIDNotFoundErrorCode))
	})
}

func (s *BooksServiceTestSuite) TestUpdate() {

	s.Run("Should replace the whole text triple when only genre is given", func() {

		book := fakeBook()
		bookID := book.ID.Hex()

		updated := book
		updated.Title, updated.Author, updated.Genre = "", "", "thriller novel"

		s.store.On("GetByID", s.ctx, bookID).Return(book, nil).Once()
		s.store.On("Update", s.ctx, bookID, objects.BookChange{ReplaceText: true, Genre: "thriller novel"}).Return(updated, nil).Once()

		actual, err := s.service.Update(s.ctx, bookID, UpdateBookInput{Genre: "thriller novel"})
		s.Require().NoError(err)
		s.Require().Empty(actual.Title, "Title should not be kept from the previous record")
		s.Require().Empty(actual.Author, "Author should not be kept from the previous record")
		s.Require().Equal("thriller novel", actual.Genre)
	})

	s.Run("Should destroy old cover photo before uploading the new one", func() {

		book := fakeBook()
		bookID := book.ID.Hex()
		coverPath := tempCoverPhoto(s)
		newCoverPhoto := fakeCoverPhoto()

		var calls []string
		s.service.removeFile = func(name string) error {
			calls = append(calls, "remove")
			return os.Remove(name)
		}

		s.store.On("GetByID", s.ctx, bookID).Return(book, nil).Once()
		s.assets.On("Destroy", s.ctx, book.CoverPhoto.AssetID).Return(nil).Once().
			Run(func(mock.Arguments) { calls = append(calls, "destroy") })
		s.assets.On("Upload", s.ctx, coverPath).Return(newCoverPhoto, nil).Once().
			Run(func(mock.Arguments) { calls = append(calls, "upload") })

		updated := book
		updated.CoverPhoto = &newCoverPhoto
		s.store.On("Update", s.ctx, bookID, objects.BookChange{CoverPhoto: &newCoverPhoto}).Return(updated, nil).Once()

		actual, err := s.service.Update(s.ctx, bookID, UpdateBookInput{CoverPhotoPath: coverPath})
		s.Require().NoError(err)
		s.Require().Equal(updated, actual)
		s.Require().Equal([]string{"destroy", "upload", "remove"}, calls)
		s.Require().NoFileExists(coverPath)
	})

	s.Run("Should throw not found without touching assets", func() {

		s.store.On("GetByID", s.ctx, "missing").Return(objects.Book{}, serverError.BookIDNotFoundError.New()).Once()

		_, err := s.service.Update(s.ctx, "missing", UpdateBookInput{Title: "whatever", CoverPhotoPath: "cover.png"})
		s.Require().True(serverError.IsCode(err, serverError.BookIDNotFoundErrorCode))
		s.assets.AssertNotCalled(s.T(), "Destroy", mock.Anything, mock.Anything)
		s.store.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func (s *BooksServiceTestSuite) TestDelete() {

	s.Run("Should delete record then destroy its cover photo", func() {

		book := fakeBook()
		bookID := book.ID.Hex()

		s.store.On("GetByID", s.ctx, bookID).Return(book, nil).Once()
		s.store.On("Delete", s.ctx, bookID).Return(true, nil).Once()
		s.assets.On("Destroy", s.ctx, book.CoverPhoto.AssetID).Return(nil).Once()

		s.Require().NoError(s.service.Delete(s.ctx, bookID))
	})

	s.Run("Should throw not found without any asset operation", func() {

		s.store.On("GetByID", s.ctx, "missing").Return(objects.Book{}, serverError.BookIDNotFoundError.New()).Once()

		err := s.service.Delete(s.ctx, "missing")
		s.Require().True(serverError.IsCode(err, serverError.BookIDNotFoundErrorCode))
		s.store.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
		s.assets.AssertNotCalled(s.T(), "Destroy", mock.Anything, mock.Anything)
	})

	s.Run("Should keep cover photo when nothing was deleted", func() {

		book := fakeBook()
		bookID := book.ID.Hex()

		s.store.On("GetByID", s.ctx, bookID).Return(book, nil).Once()
		s.store.On("Delete", s.ctx, bookID).Return(false, nil).Once()

		s.Require().NoError(s.service.Delete(s.ctx, bookID))
		s.assets.AssertNotCalled(s.T(), "Destroy", mock.Anything, mock.Anything)
	})

	s.Run("Should not destroy cover photo when record deletion fails", func() {

		book := fakeBook()
		bookID := book.ID.Hex()

		s.store.On("GetByID", s.ctx, bookID).Return(book, nil).Once()
		s.store.On("Delete", s.ctx, bookID).Return(false, errors.New("server selection timeout")).Once()

		s.Require().EqualError(s.service.Delete(s.ctx, bookID), "server selection timeout")
		s.assets.AssertNotCalled(s.T(), "Destroy", mock.Anything, mock.Anything)
	})

	s.Run("Should report asset failure after the record is gone", func() {

		book := fakeBook()
		bookID := book.ID.Hex()

		s.store.On("GetByID", s.ctx, bookID).Return(book, nil).Once()
		s.store.On("Delete", s.ctx, bookID).Return(true, nil).Once()
		s.assets.On("Destroy", s.ctx, book.CoverPhoto.AssetID).Return(errors.New("asset host unavailable")).Once()

		s.Require().EqualError(s.service.Delete(s.ctx, bookID), "asset host unavailable")
	})
}

func TestBooksService(t *testing.T) {
	suite.Run(t, new(BooksServiceTestSuite))
}

func tempCoverPhoto(s *BooksServiceTestSuite) string {

	path := filepath.Join(s.T().TempDir(), "IMG_1_1.png")
	s.Require().NoError(os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n"), 0o600))

	return path
}

func fakeCoverPhoto() objects.CoverPhoto {

	assetID := gofakeit.UUID()
	return objects.CoverPhoto{
		AssetID: assetID,
		URL:     "https://res.cloudinary.com/demo/image/upload/" + assetID + ".png",
	}
}

func fakeBook() objects.Book {

	fakeInfo := gofakeit.Book()
	coverPhoto := fakeCoverPhoto()

	return objects.Book{
		ID:              primitive.NewObjectID(),
		Title:           Normalize(fakeInfo.Title),
		Author:          Normalize(fakeInfo.Author),
		Genre:           Normalize(fakeInfo.Genre),
		ISBN:            GenerateISBN(),
		PublicationDate: "2023",
		CoverPhoto:      &coverPhoto,
	}
}
