package errors

const (
	DuplicateTitleErrorCode = 200_001
	BookIDNotFoundErrorCode = 200_002
	BookNotFoundErrorCode   = 200_003
	InvalidFileErrorCode    = 200_004
)

// DuplicateTitleError indicates user creates a book using a title that is already in used
var DuplicateTitleError = new(DuplicateTitleErrorCode, "DuplicateTitle", "Book with title: %s already exist")

// BookIDNotFoundError indicates user gives an unknown or malformed book ID
var BookIDNotFoundError = new(BookIDNotFoundErrorCode, "BookIDNotFound", "No book found")

// BookNotFoundError indicates no book matches the given genre and/or publication year
var BookNotFoundError = new(BookNotFoundErrorCode, "BookNotFound", "Book not found")

// InvalidFileError indicates the uploaded cover photo is not an acceptable image
var InvalidFileError = new(InvalidFileErrorCode, "InvalidFile", "%s")
