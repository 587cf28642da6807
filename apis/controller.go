package apis

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-book-crud/errors"
	"github.com/supakorn-kn/go-book-crud/logging"
	"github.com/supakorn-kn/go-book-crud/uploads"
	"go.uber.org/zap"
)

const (
	coverPhotoField = "coverPhoto"
	bookIDParam     = "bookId"
)

func RegisterBookAPI(api BookAPI, group *gin.RouterGroup, uploader *uploads.Uploader) {

	group.POST("/create-book", uploader.Single(coverPhotoField), func(ctx *gin.Context) {

		book, err := api.Create(uploads.Path(ctx, coverPhotoField), ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, Response{Message: BookCreatedMessage, Data: book})
	})

	group.GET("/books", func(ctx *gin.Context) {

		books, err := api.List(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, Response{Message: BooksListedMessage, Data: books})
	})

	group.GET("/book/:"+bookIDParam, func(ctx *gin.Context) {

		book, err := api.ReadOne(ctx.Param(bookIDParam), ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, Response{Message: BookFoundMessage, Data: book})
	})

	group.GET("/genre", foundHandler(api.FindByGenre))
	group.GET("/year", foundHandler(api.FindByYear))
	group.GET("/search", foundHandler(api.Search))

	group.PUT("/book/:"+bookIDParam, uploader.Single(coverPhotoField), func(ctx *gin.Context) {

		book, err := api.Update(ctx.Param(bookIDParam), uploads.Path(ctx, coverPhotoField), ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, Response{Message: BookUpdatedMessage, Data: book})
	})

	group.DELETE("/delete-book/:"+bookIDParam, func(ctx *gin.Context) {

		err := api.Delete(ctx.Param(bookIDParam), ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, Response{Message: BookDeletedMessage})
	})
}

func foundHandler(find func(ctx *gin.Context) error) gin.HandlerFunc {

	return func(ctx *gin.Context) {

		if err := find(ctx); err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, Response{Message: BookFoundMessage})
	}
}

func writeErrorJSON(ctx *gin.Context, err error) {

	logger := logging.FromContext(ctx)

	assertedError, ok := errors.TryAssertError(err)
	if !ok {
		logger.Error("request failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, Response{Message: err.Error()})
		return
	}

	var statusCode int
	var errorResponse = Response{Message: assertedError.Message}

	switch assertedError.Code {
	case errors.BookIDNotFoundErrorCode, errors.BookNotFoundErrorCode:
		statusCode = http.StatusNotFound
	case errors.ValidationErrorCode:
		statusCode = http.StatusBadRequest
		errorResponse = Response{Message: ValidationErrorMessage, Errors: assertedError.Message}
	case errors.UnknownErrorCode:
		statusCode = http.StatusInternalServerError
	default:
		statusCode = http.StatusBadRequest
	}

	logger.Info("request rejected",
		zap.Int("error.code", assertedError.Code),
		zap.String("error.name", assertedError.Name),
		zap.String("error.message", assertedError.Message),
	)

	ctx.JSON(statusCode, errorResponse)
}
