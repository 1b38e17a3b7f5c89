package stream

import "sync"

/*
Хаб рассылает события всем активным подпискам. Подписка живет до явного
Unsubscribe — жизненный цикл управляется вызывающей стороной, а не транспортом.
*/

// Subscription канал событий плюс явная отмена подписки.
// Unsubscribe обязателен, иначе слот в хабе не освободится.
type Subscription[T any] struct {
	C    <-chan T
	once sync.Once
	stop func()
}

func (s *Subscription[T]) Unsubscribe() {
	s.once.Do(s.stop)
}

type Hub[T any] struct {
	mu     sync.RWMutex
	subs   map[uint64]chan T
	nextID uint64
	buffer int
	closed bool
}

func NewHub[T any](buffer int) *Hub[T] {
	if buffer <= 0 {
		buffer = 1
	}
	return &Hub[T]{
		subs:   make(map[uint64]chan T),
		buffer: buffer,
	}
}

func (h *Hub[T]) Subscribe() *Subscription[T] {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan T, h.buffer)
	if h.closed {
		close(ch)
		return &Subscription[T]{C: ch, stop: func() {}}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	return &Subscription[T]{
		C: ch,
		stop: func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub)
			}
		},
	}
}

// Publish не блокируется: медленный подписчик с заполненным буфером
// теряет событие, остальные получают его как обычно.
func (h *Hub[T]) Publish(v T) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for _, ch := range h.subs {
		select {
		case ch <- v:
		default:
		}
	}
}

func (h *Hub[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}

func (h *Hub[T]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
