package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/UkralStul/blog-mvc/cmd/blogctl/output"
	"github.com/UkralStul/blog-mvc/internal/client"
	"github.com/UkralStul/blog-mvc/internal/controller"
	"github.com/UkralStul/blog-mvc/internal/domain"
	"github.com/UkralStul/blog-mvc/internal/view"
)

// errReported - ошибка уже напечатана, остается только выйти с ненулевым кодом.
var errReported = errors.New("blogctl: failed")

const dateLayout = "Jan 2, 2006, 03:04 PM"

// terminalPage - страница в памяти, которая сразу печатает сообщения об ошибках и успехе.
type terminalPage struct {
	*view.Page

	mu     sync.Mutex
	errors int
}

func (p *terminalPage) Announce(kind view.MessageKind, text string) {
	if kind == view.MessageError {
		p.mu.Lock()
		p.errors++
		p.mu.Unlock()
		output.Error("%s", text)
		return
	}
	output.Success("%s", text)
}

func (p *terminalPage) failed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errors > 0
}

// session - собранное приложение на одну команду: модель, представление и контроллер.
type session struct {
	page    *terminalPage
	view    *view.View
	manager *client.Manager
	ctrl    *controller.Controller
}

// newSession собирает приложение и выполняет начальную загрузку постов.
func newSession(ctx context.Context, confirm view.Confirmer) (*session, error) {
	logger := log.New(io.Discard, "", 0)
	if verbose {
		logger = log.New(os.Stderr, "blogctl: ", log.LstdFlags)
	}

	page := &terminalPage{Page: view.NewPage()}
	opts := []view.Option{view.WithToastDuration(cfg.ToastDuration)}
	if confirm != nil {
		opts = append(opts, view.WithConfirmer(confirm))
	}
	v := view.New(page, opts...)
	m := client.NewManager(cfg.APIURL,
		client.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		client.WithLogger(logger),
	)
	ctrl := controller.New(m, v, logger)
	if err := ctrl.Initialize(ctx); err != nil {
		return nil, err
	}
	return &session{page: page, view: v, manager: m, ctrl: ctrl}, nil
}

// finish сохраняет страницу в --out и превращает показанные ошибки в код возврата.
func (s *session) finish() error {
	if outPath != "" {
		if err := writePage(s.page.Page, outPath); err != nil {
			return err
		}
		output.Muted("Page written to %s", outPath)
	}
	if s.page.failed() {
		return errReported
	}
	return nil
}

func writePage(page *view.Page, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := page.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write page: %w", err)
	}
	return f.Close()
}

// parseID разбирает положительный id поста из аргумента.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid post id %q", arg)
	}
	return id, nil
}

// promptConfirm спрашивает y/N в терминале. Пустой ответ или EOF - отказ.
func promptConfirm(in io.Reader) view.Confirmer {
	reader := bufio.NewReader(in)
	return func(message string) bool {
		fmt.Fprintf(output.Out, "%s [y/N]: ", message)
		answer, err := reader.ReadString('\n')
		if err != nil && answer == "" {
			fmt.Fprintln(output.Out)
			return false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		}
		return false
	}
}

// reportInvalid печатает ошибки полей так же, как форма показывает их под полями.
func reportInvalid(in domain.PostInput) error {
	for _, fe := range domain.ValidatePost(in) {
		output.Error("%s: %s", fe.Field, fe.Message)
	}
	return errReported
}

func printJSON(v any) error {
	enc := json.NewEncoder(output.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPost(p domain.Post, full bool) {
	meta := fmt.Sprintf("%s · %s", p.Author, p.CreatedAt.Local().Format(dateLayout))
	output.Post(p.ID, p.Title, meta, !p.UpdatedAt.Equal(p.CreatedAt))
	if !full {
		return
	}
	for _, line := range strings.Split(p.Content, "\n") {
		if strings.TrimSpace(line) != "" {
			output.Text("   " + line)
		}
	}
}
