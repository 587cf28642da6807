package apis

import (
	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-book-crud/objects"
)

// Response is the envelope of every book route. Errors only carries validation details.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  string `json:"errors,omitempty"`
}

// BookAPI serves the book routes. Lookups by genre and year only report whether a
// matching book exists.
type BookAPI interface {
	Create(coverPhotoPath string, ctx *gin.Context) (*objects.Book, error)
	List(ctx *gin.Context) ([]objects.Book, error)
	ReadOne(bookID string, ctx *gin.Context) (*objects.Book, error)
	FindByGenre(ctx *gin.Context) error
	FindByYear(ctx *gin.Context) error
	Search(ctx *gin.Context) error
	Update(bookID string, coverPhotoPath string, ctx *gin.Context) (*objects.Book, error)
	Delete(bookID string, ctx *gin.Context) error
}

const (
	BookCreatedMessage = "Book created successfully"
	BooksListedMessage = "All books below"
	BookFoundMessage   = "Book below"
	BookUpdatedMessage = "Book updated successfully"
	BookDeletedMessage = "Book deleted successfully"

	ValidationErrorMessage = "Validation error"
)
