package books

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	serverError "github.com/supakorn-kn/go-book-crud/errors"
	"github.com/supakorn-kn/go-book-crud/objects"
	"go.uber.org/zap"
)

// Store persists book records.
type Store interface {
	Insert(ctx context.Context, book objects.Book) (objects.Book, error)
	List(ctx context.Context) ([]objects.Book, error)
	GetByID(ctx context.Context, bookID string) (objects.Book, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	FindOne(ctx context.Context, filter objects.BookFilter) (objects.Book, error)
	Update(ctx context.Context, bookID string, change objects.BookChange) (objects.Book, error)
	Delete(ctx context.Context, bookID string) (bool, error)
}

// AssetHost stores the cover photo images.
type AssetHost interface {
	Upload(ctx context.Context, localPath string) (objects.CoverPhoto, error)
	Destroy(ctx context.Context, assetID string) error
}

type CreateBookInput struct {
	Title          string
	Author         string
	Genre          string
	CoverPhotoPath string
}

// UpdateBookInput holds the raw request values. Fields sent empty are rejected before
// reaching the service, so an empty string means not supplied.
type UpdateBookInput struct {
	Title          string
	Author         string
	Genre          string
	CoverPhotoPath string
}

func (in UpdateBookInput) hasText() bool {
	return in.Title != "" || in.Author != "" || in.Genre != ""
}

type BooksService struct {
	store  Store
	assets AssetHost
	logger *zap.Logger

	now        func() time.Time
	isbn       func() string
	removeFile func(name string) error
}

func NewBooksService(store Store, assets AssetHost, logger *zap.Logger) *BooksService {

	return &BooksService{
		store:      store,
		assets:     assets,
		logger:     logger,
		now:        time.Now,
		isbn:       GenerateISBN,
		removeFile: os.Remove,
	}
}

func (s *BooksService) Create(ctx context.Context, input CreateBookInput) (objects.Book, error) {

	// compared against the raw title, not the normalized one
	exists, err := s.store.ExistsByTitle(ctx, strings.ToLower(input.Title))
	if err != nil {
		return objects.Book{}, err
	}

	if exists {
		return objects.Book{}, serverError.DuplicateTitleError.New(input.Title)
	}

	if input.CoverPhotoPath == "" {
		return objects.Book{}, serverError.ValidationError.New("Cover photo is required.")
	}

	book := objects.Book{
		Title:  Normalize(input.Title),
		Author: Normalize(input.Author),
		Genre:  Normalize(input.Genre),
	}

	coverPhoto, err := s.uploadCoverPhoto(ctx, input.CoverPhotoPath)
	if err != nil {
		return objects.Book{}, err
	}

	book.CoverPhoto = &coverPhoto
	book.ISBN = s.isbn()
	book.PublicationDate = strconv.Itoa(s.now().Year())

	return s.store.Insert(ctx, book)
}

func (s *BooksService) List(ctx context.Context) ([]objects.Book, error) {
	return s.store.List(ctx)
}

func (s *BooksService) GetByID(ctx context.Context, bookID string) (objects.Book, error) {
	return s.store.GetByID(ctx, bookID)
}

func (s *BooksService) GetByGenre(ctx context.Context, genre string) (objects.Book, error) {

	normalized := Normalize(genre)
	return s.store.FindOne(ctx, objects.BookFilter{Genre: &normalized})
}

func (s *BooksService) GetByYear(ctx context.Context, year string) (objects.Book, error) {
	return s.store.FindOne(ctx, objects.BookFilter{PublicationDate: &year})
}

func (s *BooksService) GetByYearAndGenre(ctx context.Context, year, genre string) (objects.Book, error) {

	normalized := Normalize(genre)
	return s.store.FindOne(ctx, objects.BookFilter{PublicationDate: &year, Genre: &normalized})
}

// Update replaces title, author and genre together as soon as one of them is given:
// the missing ones are removed and the given ones are stored without normalization.
// A new cover photo replaces the old asset, which is destroyed first.
func (s *BooksService) Update(ctx context.Context, bookID string, input UpdateBookInput) (objects.Book, error) {

	book, err := s.store.GetByID(ctx, bookID)
	if err != nil {
		return objects.Book{}, err
	}

	var change objects.BookChange

	if input.hasText() {
		change.ReplaceText = true
		change.Title = input.Title
		change.Author = input.Author
		change.Genre = input.Genre
	}

	if input.CoverPhotoPath != "" {

		if book.CoverPhoto != nil {
			if err := s.assets.Destroy(ctx, book.CoverPhoto.AssetID); err != nil {
				return objects.Book{}, err
			}
		}

		coverPhoto, err := s.uploadCoverPhoto(ctx, input.CoverPhotoPath)
		if err != nil {
			return objects.Book{}, err
		}

		change.CoverPhoto = &coverPhoto
	}

	return s.store.Update(ctx, bookID, change)
}

// Delete removes the record, then its cover photo. A failing asset removal leaves
// the asset orphaned; the record stays deleted.
func (s *BooksService) Delete(ctx context.Context, bookID string) error {

	book, err := s.store.GetByID(ctx, bookID)
	if err != nil {
		return err
	}

	deleted, err := s.store.Delete(ctx, bookID)
	if err != nil {
		return err
	}

	if !deleted || book.CoverPhoto == nil {
		return nil
	}

	if err := s.assets.Destroy(ctx, book.CoverPhoto.AssetID); err != nil {
		s.logger.Warn("cover photo orphaned",
			zap.String("book.id", bookID),
			zap.String("asset.id", book.CoverPhoto.AssetID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// uploadCoverPhoto sends the file to the asset host then removes the local copy.
func (s *BooksService) uploadCoverPhoto(ctx context.Context, localPath string) (objects.CoverPhoto, error) {

	coverPhoto, err := s.assets.Upload(ctx, localPath)
	if err != nil {
		return objects.CoverPhoto{}, err
	}

	if err := s.removeFile(localPath); err != nil {
		s.logger.Warn("uploaded cover photo kept after local cleanup failed",
			zap.String("asset.id", coverPhoto.AssetID),
			zap.Error(err),
		)
		return objects.CoverPhoto{}, err
	}

	return coverPhoto, nil
}
