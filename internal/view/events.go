package view

import "github.com/UkralStul/blog-mvc/internal/domain"

// Подписчик View реализует любое подмножество этих интерфейсов.

type ViewInitializedHandler interface {
	OnViewInitialized()
}

type PostCreateRequestedHandler interface {
	OnPostCreateRequested(in domain.PostInput)
}

type PostUpdateRequestedHandler interface {
	OnPostUpdateRequested(id int64, in domain.PostInput)
}

type PostDeleteRequestedHandler interface {
	OnPostDeleteRequested(id int64)
}

// PostEditRequestedHandler должен найти пост и вызвать View.ShowEditModal.
type PostEditRequestedHandler interface {
	OnPostEditRequested(id int64)
}
