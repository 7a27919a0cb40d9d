package view

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/UkralStul/blog-mvc/internal/domain"
)

// dateLayout - дата на карточке, например "Mar 5, 2024, 02:07 PM".
const dateLayout = "Jan 2, 2006, 03:04 PM"

var templates = template.Must(template.New("view").Parse(`
{{define "posts"}}{{if not .}}<div class="no-posts">
  <h3>No blog posts yet</h3>
  <p>Be the first to create a blog post!</p>
</div>{{else}}{{range .}}{{template "card" .}}{{end}}{{end}}{{end}}

{{define "card"}}<article class="post-card" data-post-id="{{.ID}}">
  <div class="post-header">
    <h2 class="post-title">{{.Title}}</h2>
    <div class="post-meta">
      <span class="post-date">{{.Date}}</span>{{if .Updated}}
      <span class="post-updated">Updated</span>{{end}}
      <span class="post-author">{{.Author}}</span>
    </div>
  </div>
  <div class="post-content">{{range .Paragraphs}}<p>{{.}}</p>{{end}}</div>
  <div class="post-actions">
    <button class="btn btn-edit" data-action="edit" data-post-id="{{.ID}}">Edit</button>
    <button class="btn btn-delete" data-action="delete" data-post-id="{{.ID}}">Delete</button>
  </div>
</article>
{{end}}

{{define "form"}}<form id="{{.FormID}}" class="blog-form">
  <div class="form-group">
    <label for="{{.Prefix}}title">Title</label>
    <input type="text" id="{{.Prefix}}title" name="title" value="{{.Title}}"{{if .TitleError}} class="error"{{end}} required>
    {{if .TitleError}}<div id="{{.Prefix}}title-error" class="error-message">{{.TitleError}}</div>{{end}}
  </div>
  <div class="form-group">
    <label for="{{.Prefix}}content">Content</label>
    <textarea id="{{.Prefix}}content" name="content"{{if .ContentError}} class="error"{{end}} required>{{.Content}}</textarea>
    {{if .ContentError}}<div id="{{.Prefix}}content-error" class="error-message">{{.ContentError}}</div>{{end}}
  </div>
  <div class="form-actions">{{if .Cancel}}
    <button type="button" id="cancel-edit-btn" class="btn btn-secondary">Cancel</button>{{end}}
    <button type="submit" class="btn btn-primary">{{.SubmitLabel}}</button>
  </div>
</form>{{end}}

{{define "error"}}<div class="error-message">
  <span class="error-text">{{.}}</span>
  <button class="error-close">×</button>
</div>{{end}}

{{define "toasts"}}{{range .}}<div class="success-message" data-toast-id="{{.ID}}"><span class="success-text">{{.Message}}</span></div>{{end}}{{end}}

{{define "loading"}}<div class="loading">Loading...</div>{{end}}

{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Blog</title></head>
<body>
{{range .}}<div id="{{.Name}}-container"{{if .Hidden}} style="display: none"{{end}}>{{.HTML}}</div>
{{end}}</body>
</html>
{{end}}
`))

type cardData struct {
	ID         int64
	Title      string
	Author     string
	Date       string
	Updated    bool
	Paragraphs []string
}

type formData struct {
	FormID       string
	Prefix       string
	Title        string
	Content      string
	TitleError   string
	ContentError string
	SubmitLabel  string
	Cancel       bool
}

type toast struct {
	ID      int
	Message string
}

func newCard(p domain.Post) cardData {
	return cardData{
		ID:         p.ID,
		Title:      p.Title,
		Author:     p.Author,
		Date:       p.CreatedAt.Format(dateLayout),
		Updated:    !p.UpdatedAt.Equal(p.CreatedAt),
		Paragraphs: paragraphs(p.Content),
	}
}

// paragraphs режет текст по строкам и выбрасывает пустые.
func paragraphs(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// execute рендерит шаблон в строку. Шаблоны статические, так что ошибка
// здесь - это ошибка в данных; показываем ее текст вместо области.
func execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return template.HTML(template.HTMLEscapeString(err.Error()))
	}
	return template.HTML(buf.String())
}
