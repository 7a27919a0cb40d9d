// Package observer - список подписчиков с синхронной доставкой уведомлений.
//
// Подписчик - любое значение. Уведомление получают только те подписчики,
// которые реализуют интерфейс обработчика нужного события; остальные
// молча пропускаются.
package observer

import "sync"

// List хранит подписчиков в порядке регистрации.
type List struct {
	mu   sync.RWMutex
	subs []any
}

// Add регистрирует подписчика. sub должен быть сравнимым (обычно указатель),
// иначе Remove не сможет его найти.
func (l *List) Add(sub any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subs = append(l.subs, sub)
}

// Remove удаляет все вхождения подписчика.
func (l *List) Remove(sub any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.subs[:0]
	for _, s := range l.subs {
		if !same(s, sub) {
			kept = append(kept, s)
		}
	}
	// обнуляем хвост, чтобы не держать ссылки
	for i := len(kept); i < len(l.subs); i++ {
		l.subs[i] = nil
	}
	l.subs = kept
}

// Len возвращает число подписчиков.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.subs)
}

func (l *List) snapshot() []any {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]any, len(l.subs))
	copy(out, l.subs)
	return out
}

// Notify вызывает fn для каждого подписчика, реализующего H, в порядке регистрации.
// Блокировка на время вызова не держится: обработчик может сам подписываться
// или обращаться к источнику событий.
func Notify[H any](l *List, fn func(H)) {
	for _, s := range l.snapshot() {
		if h, ok := s.(H); ok {
			fn(h)
		}
	}
}

func same(a, b any) (eq bool) {
	defer func() {
		// несравнимые типы (map, func) просто не совпадают
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
