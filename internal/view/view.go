// Package view - слой представления блога: рисует посты и формы на Surface,
// принимает намерения пользователя и сообщает о них подписчикам.
// Данных о постах View не хранит; только то, что сейчас на экране.
package view

import (
	"html/template"
	"strings"
	"sync"
	"time"

	"github.com/UkralStul/blog-mvc/internal/domain"
	"github.com/UkralStul/blog-mvc/internal/observer"
)

const (
	DefaultToastDuration = 3 * time.Second
	deleteConfirmMessage = "Are you sure you want to delete this post? This cannot be undone."
)

// Confirmer спрашивает пользователя и возвращает его ответ.
type Confirmer func(message string) bool

// FormData - значения полей формы как их ввел пользователь.
// Author в форме не выводится; его может задать вызывающий код.
type FormData struct {
	Title   string
	Content string
	Author  string
}

// Option настраивает View.
type Option func(*View)

// WithConfirmer задает подтверждение удаления. Без него удаление всегда отклоняется.
func WithConfirmer(c Confirmer) Option {
	return func(v *View) { v.confirm = c }
}

// WithToastDuration задает время жизни сообщения об успехе.
func WithToastDuration(d time.Duration) Option {
	return func(v *View) { v.toastTTL = d }
}

type formState struct {
	data   FormData
	errors []domain.FieldError
}

func (f formState) errorFor(field string) string {
	for _, e := range f.errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

type View struct {
	surface  Surface
	confirm  Confirmer
	toastTTL time.Duration
	subs     observer.List

	mu            sync.Mutex
	currentEditID int64
	createForm    formState
	editForm      formState
	toasts        []toast
	nextToastID   int
}

func New(surface Surface, opts ...Option) *View {
	v := &View{
		surface:  surface,
		confirm:  func(string) bool { return false },
		toastTTL: DefaultToastDuration,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *View) Subscribe(sub any)   { v.subs.Add(sub) }
func (v *View) Unsubscribe(sub any) { v.subs.Remove(sub) }

// Initialize рисует форму создания и сообщает, что представление готово.
func (v *View) Initialize() {
	v.mu.Lock()
	v.renderCreateFormLocked()
	v.mu.Unlock()

	v.surface.Render(RegionLoading, execute("loading", nil))
	v.surface.SetVisible(RegionLoading, false)
	v.surface.SetVisible(RegionError, false)
	v.surface.SetVisible(RegionEdit, false)

	observer.Notify(&v.subs, func(h ViewInitializedHandler) { h.OnViewInitialized() })
}

// RenderPosts рисует карточки постов; пустой список - заглушку.
func (v *View) RenderPosts(posts []domain.Post) {
	cards := make([]cardData, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, newCard(p))
	}
	v.surface.Render(RegionPosts, execute("posts", cards))
}

// SubmitCreateForm проверяет форму создания. При ошибках показывает их у полей
// и ничего не отправляет. Возвращает true, если запрос на создание ушел подписчикам.
func (v *View) SubmitCreateForm(data FormData) bool {
	data = trimForm(data)
	errs := domain.ValidatePost(domain.PostInput{Title: data.Title, Content: data.Content})

	v.mu.Lock()
	v.createForm = formState{data: data, errors: errs}
	v.renderCreateFormLocked()
	v.mu.Unlock()

	if len(errs) > 0 {
		return false
	}
	in := domain.PostInput{Title: data.Title, Content: data.Content, Author: data.Author}
	observer.Notify(&v.subs, func(h PostCreateRequestedHandler) { h.OnPostCreateRequested(in) })
	return true
}

// ClearForm сбрасывает форму создания вместе с ошибками.
func (v *View) ClearForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.createForm = formState{}
	v.renderCreateFormLocked()
}

// RequestEdit просит подписчиков найти пост; открывать окно будет координатор.
func (v *View) RequestEdit(id int64) {
	observer.Notify(&v.subs, func(h PostEditRequestedHandler) { h.OnPostEditRequested(id) })
}

// ShowEditModal открывает окно редактирования с данными поста.
func (v *View) ShowEditModal(post domain.Post) {
	v.mu.Lock()
	v.currentEditID = post.ID
	v.editForm = formState{data: FormData{Title: post.Title, Content: post.Content}}
	v.renderEditFormLocked()
	v.mu.Unlock()

	v.surface.SetVisible(RegionEdit, true)
}

// SubmitEditForm проверяет окно редактирования и отправляет запрос на обновление
// с исходным id. Окно остается открытым до HideEditModal.
func (v *View) SubmitEditForm(data FormData) bool {
	data = trimForm(data)
	errs := domain.ValidatePost(domain.PostInput{Title: data.Title, Content: data.Content})

	v.mu.Lock()
	id := v.currentEditID
	if id == 0 {
		v.mu.Unlock()
		return false
	}
	v.editForm = formState{data: data, errors: errs}
	v.renderEditFormLocked()
	v.mu.Unlock()

	if len(errs) > 0 {
		return false
	}
	in := domain.PostInput{Title: data.Title, Content: data.Content}
	observer.Notify(&v.subs, func(h PostUpdateRequestedHandler) { h.OnPostUpdateRequested(id, in) })
	return true
}

// CancelEdit - кнопка Cancel в окне редактирования.
func (v *View) CancelEdit() { v.HideEditModal() }

// CloseEdit - крестик или клик мимо окна.
func (v *View) CloseEdit() { v.HideEditModal() }

// HideEditModal закрывает окно и забывает редактируемый пост и содержимое формы.
func (v *View) HideEditModal() {
	v.mu.Lock()
	v.currentEditID = 0
	v.editForm = formState{}
	v.mu.Unlock()

	v.surface.SetVisible(RegionEdit, false)
	v.surface.Render(RegionEdit, "")
}

// CurrentEditID возвращает id поста в окне редактирования.
func (v *View) CurrentEditID() (int64, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.currentEditID, v.currentEditID != 0
}

// RequestDelete спрашивает подтверждение и только после него сообщает подписчикам.
func (v *View) RequestDelete(id int64) bool {
	if !v.confirm(deleteConfirmMessage) {
		return false
	}
	observer.Notify(&v.subs, func(h PostDeleteRequestedHandler) { h.OnPostDeleteRequested(id) })
	return true
}

// ShowLoading показывает индикатор и убирает баннер ошибки.
func (v *View) ShowLoading() {
	v.surface.SetVisible(RegionLoading, true)
	v.DismissError()
}

func (v *View) HideLoading() {
	v.surface.SetVisible(RegionLoading, false)
}

// ShowError показывает баннер; он висит до DismissError или следующей ошибки.
func (v *View) ShowError(message string) {
	v.surface.Render(RegionError, execute("error", message))
	v.surface.SetVisible(RegionError, true)
	v.announce(MessageError, message)
}

func (v *View) DismissError() {
	v.surface.SetVisible(RegionError, false)
}

// ShowSuccess показывает сообщение, которое само исчезнет через toastTTL.
func (v *View) ShowSuccess(message string) {
	v.mu.Lock()
	v.nextToastID++
	id := v.nextToastID
	v.toasts = append(v.toasts, toast{ID: id, Message: message})
	v.renderToastsLocked()
	v.mu.Unlock()

	v.announce(MessageSuccess, message)
	time.AfterFunc(v.toastTTL, func() { v.dismissToast(id) })
}

func (v *View) announce(kind MessageKind, text string) {
	if a, ok := v.surface.(Announcer); ok {
		a.Announce(kind, text)
	}
}

func (v *View) dismissToast(id int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, t := range v.toasts {
		if t.ID == id {
			v.toasts = append(v.toasts[:i], v.toasts[i+1:]...)
			break
		}
	}
	v.renderToastsLocked()
}

func (v *View) renderToastsLocked() {
	v.surface.Render(RegionToast, execute("toasts", v.toasts))
}

func (v *View) renderCreateFormLocked() {
	v.surface.Render(RegionForm, renderForm("post-form", "", "Publish Post", false, v.createForm))
}

func (v *View) renderEditFormLocked() {
	v.surface.Render(RegionEdit, renderForm("edit-post-form", "edit-", "Save Changes", true, v.editForm))
}

func renderForm(formID, prefix, submit string, cancel bool, st formState) template.HTML {
	return execute("form", formData{
		FormID:       formID,
		Prefix:       prefix,
		Title:        st.data.Title,
		Content:      st.data.Content,
		TitleError:   st.errorFor("title"),
		ContentError: st.errorFor("content"),
		SubmitLabel:  submit,
		Cancel:       cancel,
	})
}

func trimForm(d FormData) FormData {
	return FormData{
		Title:   strings.TrimSpace(d.Title),
		Content: strings.TrimSpace(d.Content),
		Author:  strings.TrimSpace(d.Author),
	}
}
