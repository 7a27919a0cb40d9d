package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	MinTitleLen   = 3
	MinContentLen = 10
)

// FieldError - ошибка валидации конкретного поля формы.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError собирает все ошибки полей. До сети такой запрос не доходит.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, ". ")
}

// ValidatePost проверяет заголовок и содержимое после обрезки пробелов.
// Пустой результат означает, что данные валидны.
func ValidatePost(in PostInput) []FieldError {
	var errs []FieldError

	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	case utf8.RuneCountInString(title) < MinTitleLen:
		errs = append(errs, FieldError{Field: "title", Message: "Title must be at least 3 characters long"})
	}

	content := strings.TrimSpace(in.Content)
	switch {
	case content == "":
		errs = append(errs, FieldError{Field: "content", Message: "Content is required"})
	case utf8.RuneCountInString(content) < MinContentLen:
		errs = append(errs, FieldError{Field: "content", Message: "Content must be at least 10 characters long"})
	}

	return errs
}

// Validate возвращает *ValidationError или nil.
func Validate(in PostInput) error {
	if errs := ValidatePost(in); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
