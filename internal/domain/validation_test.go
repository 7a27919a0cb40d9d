package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePost_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		input  PostInput
		fields []string
	}{
		{"title two chars", PostInput{Title: "ab", Content: strings.Repeat("x", 10)}, []string{"title"}},
		{"content nine chars", PostInput{Title: "abc", Content: strings.Repeat("x", 9)}, []string{"content"}},
		{"exact minimums", PostInput{Title: "abc", Content: strings.Repeat("x", 10)}, nil},
		{"whitespace is trimmed", PostInput{Title: "  ab  ", Content: "   123456789   "}, []string{"title", "content"}},
		{"multibyte counts runes", PostInput{Title: "éèê", Content: "ñññññññññññ"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePost(tt.input)
			var got []string
			for _, e := range errs {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestValidatePost_Messages(t *testing.T) {
	errs := ValidatePost(PostInput{Title: "", Content: "hi"})
	require.Len(t, errs, 2)
	assert.Equal(t, "Title is required", errs[0].Message)
	assert.Equal(t, "Content must be at least 10 characters long", errs[1].Message)
}

func TestValidate_JoinsMessages(t *testing.T) {
	err := Validate(PostInput{Title: "ab", Content: ""})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 2)
	assert.Equal(t, "Title must be at least 3 characters long. Content is required", err.Error())

	assert.NoError(t, Validate(PostInput{Title: "abc", Content: "0123456789"}))
}

func TestNewPost_Defaults(t *testing.T) {
	p := NewPost(PostInput{Title: "Hello", Content: "Some content here"})
	assert.Equal(t, DefaultAuthor, p.Author)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	assert.Equal(t, time.UTC, p.CreatedAt.Location())
	assert.Zero(t, p.CreatedAt.Nanosecond()%int(time.Millisecond))

	w := Welcome()
	assert.Equal(t, "Welcome to My Blog", w.Title)
	assert.Equal(t, "Blog Owner", w.Author)
}
