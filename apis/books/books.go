package books

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-book-crud/objects"
	booksService "github.com/supakorn-kn/go-book-crud/services/books"
)

// Service runs the book use cases behind the routes.
type Service interface {
	Create(ctx context.Context, input booksService.CreateBookInput) (objects.Book, error)
	List(ctx context.Context) ([]objects.Book, error)
	GetByID(ctx context.Context, bookID string) (objects.Book, error)
	GetByGenre(ctx context.Context, genre string) (objects.Book, error)
	GetByYear(ctx context.Context, year string) (objects.Book, error)
	GetByYearAndGenre(ctx context.Context, year, genre string) (objects.Book, error)
	Update(ctx context.Context, bookID string, input booksService.UpdateBookInput) (objects.Book, error)
	Delete(ctx context.Context, bookID string) error
}

type BooksAPI struct {
	service Service
}

func NewBooksAPI(service Service) (*BooksAPI, error) {

	if err := registerValidations(); err != nil {
		return nil, err
	}

	return &BooksAPI{service: service}, nil
}

type createBookForm struct {
	Title  string `form:"title" json:"title" binding:"notblank,trimmedmin=5,alphaspace"`
	Author string `form:"author" json:"author" binding:"notblank,trimmedmin=5,alphaspace"`
	Genre  string `form:"genre" json:"genre" binding:"notblank,trimmedmin=5,alphaspace"`
}

// updateBookForm keeps pointers so a field sent empty is told apart from a missing one.
type updateBookForm struct {
	Title  *string `form:"title" json:"title" binding:"omitempty,notblank,trimmedmin=5,alphaspace"`
	Author *string `form:"author" json:"author" binding:"omitempty,notblank,trimmedmin=5,alphaspace"`
	Genre  *string `form:"genre" json:"genre" binding:"omitempty,notblank,trimmedmin=5,alphaspace"`
}

func valueOf(field *string) string {

	if field == nil {
		return ""
	}

	return *field
}

// Create godoc
//
//	@Summary		Create a new book
//	@Description	Uploads a book with title, author, genre and cover photo. The ISBN and publication year are generated.
//	@Tags			Books
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			title		formData	string	true	"Book title"
//	@Param			author		formData	string	true	"Book author"
//	@Param			genre		formData	string	true	"Book genre"
//	@Param			coverPhoto	formData	file	true	"Cover photo image"
//	@Success		200			{object}	apis.Response{data=objects.Book}
//	@Failure		400			{object}	apis.Response
//	@Failure		500			{object}	apis.Response
//	@Router			/create-book [post]
func (api BooksAPI) Create(coverPhotoPath string, ctx *gin.Context) (*objects.Book, error) {

	var form createBookForm
	if err := ctx.ShouldBind(&form); err != nil {
		return nil, validationError(err)
	}

	book, err := api.service.Create(ctx.Request.Context(), booksService.CreateBookInput{
		Title:          form.Title,
		Author:         form.Author,
		Genre:          form.Genre,
		CoverPhotoPath: coverPhotoPath,
	})
	if err != nil {
		return nil, err
	}

	return &book, nil
}

// List godoc
//
//	@Summary	Get all books
//	@Tags		Books
//	@Produce	json
//	@Success	200	{object}	apis.Response{data=[]objects.Book}
//	@Failure	500	{object}	apis.Response
//	@Router		/books [get]
func (api BooksAPI) List(ctx *gin.Context) ([]objects.Book, error) {
	return api.service.List(ctx.Request.Context())
}

// ReadOne godoc
//
//	@Summary	Get a book by ID
//	@Tags		Books
//	@Produce	json
//	@Param		bookId	path		string	true	"Book ID"
//	@Success	200		{object}	apis.Response{data=objects.Book}
//	@Failure	404		{object}	apis.Response
//	@Failure	500		{object}	apis.Response
//	@Router		/book/{bookId} [get]
func (api BooksAPI) ReadOne(bookID string, ctx *gin.Context) (*objects.Book, error) {

	book, err := api.service.GetByID(ctx.Request.Context(), bookID)
	if err != nil {
		return nil, err
	}

	return &book, nil
}

// FindByGenre godoc
//
//	@Summary	Check for a book of a genre
//	@Tags		Books
//	@Produce	json
//	@Param		genre	query		string	true	"Genre"
//	@Success	200		{object}	apis.Response
//	@Failure	404		{object}	apis.Response
//	@Failure	500		{object}	apis.Response
//	@Router		/genre [get]
func (api BooksAPI) FindByGenre(ctx *gin.Context) error {

	_, err := api.service.GetByGenre(ctx.Request.Context(), ctx.Query("genre"))
	return err
}

// FindByYear godoc
//
//	@Summary	Check for a book published in a year
//	@Tags		Books
//	@Produce	json
//	@Param		year	query		string	true	"Publication year"
//	@Success	200		{object}	apis.Response
//	@Failure	404		{object}	apis.Response
//	@Failure	500		{object}	apis.Response
//	@Router		/year [get]
func (api BooksAPI) FindByYear(ctx *gin.Context) error {

	_, err := api.service.GetByYear(ctx.Request.Context(), ctx.Query("year"))
	return err
}

// Search godoc
//
//	@Summary	Check for a book by publication year and genre
//	@Tags		Books
//	@Produce	json
//	@Param		year	query		string	true	"Publication year"
//	@Param		genre	query		string	true	"Genre"
//	@Success	200		{object}	apis.Response
//	@Failure	404		{object}	apis.Response
//	@Failure	500		{object}	apis.Response
//	@Router		/search [get]
func (api BooksAPI) Search(ctx *gin.Context) error {

	_, err := api.service.GetByYearAndGenre(ctx.Request.Context(), ctx.Query("year"), ctx.Query("genre"))
	return err
}

// Update godoc
//
//	@Summary		Update a book
//	@Description	Giving any of title, author or genre replaces all three. A new cover photo replaces the old one.
//	@Tags			Books
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			bookId		path		string	true	"Book ID"
//	@Param			title		formData	string	false	"Book title"
//	@Param			author		formData	string	false	"Book author"
//	@Param			genre		formData	string	false	"Book genre"
//	@Param			coverPhoto	formData	file	false	"Cover photo image"
//	@Success		200			{object}	apis.Response{data=objects.Book}
//	@Failure		400			{object}	apis.Response
//	@Failure		404			{object}	apis.Response
//	@Failure		500			{object}	apis.Response
//	@Router			/book/{bookId} [put]
func (api BooksAPI) Update(bookID string, coverPhotoPath string, ctx *gin.Context) (*objects.Book, error) {

	var form updateBookForm
	if err := ctx.ShouldBind(&form); err != nil {
		return nil, validationError(err)
	}

	book, err := api.service.Update(ctx.Request.Context(), bookID, booksService.UpdateBookInput{
		Title:          valueOf(form.Title),
		Author:         valueOf(form.Author),
		Genre:          valueOf(form.Genre),
		CoverPhotoPath: coverPhotoPath,
	})
	if err != nil {
		return nil, err
	}

	return &book, nil
}

// Delete godoc
//
//	@Summary	Delete a book
//	@Tags		Books
//	@Produce	json
//	@Param		bookId	path		string	true	"Book ID"
//	@Success	200		{object}	apis.Response
//	@Failure	404		{object}	apis.Response
//	@Failure	500		{object}	apis.Response
//	@Router		/delete-book/{bookId} [delete]
func (api BooksAPI) Delete(bookID string, ctx *gin.Context) error {
	return api.service.Delete(ctx.Request.Context(), bookID)
}
