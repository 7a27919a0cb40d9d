package view

import (
	"html/template"
	"io"
	"sync"
)

// Region - именованная область экрана.
type Region string

const (
	RegionPosts   Region = "posts"
	RegionForm    Region = "form"
	RegionEdit    Region = "edit"
	RegionLoading Region = "loading"
	RegionError   Region = "error"
	RegionToast   Region = "toast"
)

// Surface - то, во что View рисует. HTML приходит уже экранированным.
type Surface interface {
	Render(region Region, html template.HTML)
	SetVisible(region Region, visible bool)
}

// MessageKind различает сообщения для Announcer.
type MessageKind int

const (
	MessageError MessageKind = iota
	MessageSuccess
)

// Announcer - необязательное расширение Surface. Если Surface его реализует,
// View дополнительно передает тексты баннера ошибки и сообщений об успехе без разметки.
type Announcer interface {
	Announce(kind MessageKind, text string)
}

// Page - Surface в памяти. Умеет выдать всю страницу целиком через WriteTo.
type Page struct {
	mu      sync.RWMutex
	regions map[Region]template.HTML
	hidden  map[Region]bool
}

// NewPage создает пустую страницу: индикатор загрузки, баннер ошибки и окно редактирования скрыты.
func NewPage() *Page {
	return &Page{
		regions: make(map[Region]template.HTML),
		hidden: map[Region]bool{
			RegionLoading: true,
			RegionError:   true,
			RegionEdit:    true,
		},
	}
}

func (p *Page) Render(region Region, html template.HTML) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.regions[region] = html
}

func (p *Page) SetVisible(region Region, visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hidden[region] = !visible
}

// HTML возвращает текущее содержимое области.
func (p *Page) HTML(region Region) template.HTML {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.regions[region]
}

func (p *Page) Visible(region Region) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.hidden[region]
}

type pageRegion struct {
	Name   Region
	HTML   template.HTML
	Hidden bool
}

// WriteTo пишет HTML-документ со всеми областями.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	p.mu.RLock()
	order := []Region{RegionToast, RegionError, RegionLoading, RegionForm, RegionPosts, RegionEdit}
	data := make([]pageRegion, 0, len(order))
	for _, r := range order {
		data = append(data, pageRegion{Name: r, HTML: p.regions[r], Hidden: p.hidden[r]})
	}
	p.mu.RUnlock()

	cw := &countingWriter{w: w}
	err := templates.ExecuteTemplate(cw, "page", data)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
