package books

import (
	stdErrors "errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	serverError "github.com/supakorn-kn/go-book-crud/errors"
)

const textMinLength = 5

var (
	lettersPattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

	registerOnce sync.Once
	registerErr  error
)

// registerValidations adds the text field rules to gin's validator engine.
func registerValidations() error {

	registerOnce.Do(func() {

		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}

		rules := map[string]validator.Func{
			"notblank":   notBlank,
			"trimmedmin": trimmedMin,
			"alphaspace": alphaSpace,
		}

		for tag, rule := range rules {
			if err := engine.RegisterValidation(tag, rule); err != nil {
				registerErr = fmt.Errorf("register %s validation: %w", tag, err)
				return
			}
		}
	})

	return registerErr
}

func notBlank(fl validator.FieldLevel) bool {
	return !isBlank(fl.Field().String())
}

func trimmedMin(fl validator.FieldLevel) bool {

	minLength, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return hasMinLength(fl.Field().String(), minLength)
}

func alphaSpace(fl validator.FieldLevel) bool {
	return isLetters(fl.Field().String())
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func hasMinLength(value string, minLength int) bool {
	return len([]rune(strings.TrimSpace(value))) >= minLength
}

func isLetters(value string) bool {
	return lettersPattern.MatchString(strings.TrimSpace(value))
}

// validationError turns binding failures into one ValidationError. A blank field only
// reports that it is required, any other field reports every rule it breaks.
func validationError(err error) error {

	var fieldErrors validator.ValidationErrors
	if !stdErrors.As(err, &fieldErrors) {
		return serverError.ValidationError.New(err.Error())
	}

	var messages []string
	for _, fieldError := range fieldErrors {
		messages = append(messages, fieldMessages(fieldError)...)
	}

	return serverError.ValidationError.New(joinMessages(messages))
}

func fieldMessages(fieldError validator.FieldError) []string {

	var value string
	switch v := fieldError.Value().(type) {
	case string:
		value = v
	case *string:
		value = valueOf(v)
	default:
		return []string{fieldError.Error()}
	}

	field := fieldError.Field()

	if isBlank(value) {
		return []string{fmt.Sprintf("%s is required.", field)}
	}

	var messages []string

	if !hasMinLength(value, textMinLength) {
		messages = append(messages, fmt.Sprintf("%s must be at least %d characters long.", field, textMinLength))
	}

	if !isLetters(value) {
		messages = append(messages, fmt.Sprintf("%s must contain only letters.", field))
	}

	if len(messages) == 0 {
		messages = append(messages, fieldError.Error())
	}

	return messages
}

// joinMessages separates messages with ". " without doubling their own final period.
func joinMessages(messages []string) string {

	trimmed := make([]string, 0, len(messages))
	for _, message := range messages {
		trimmed = append(trimmed, strings.TrimSuffix(message, "."))
	}

	return strings.Join(trimmed, ". ") + "."
}
