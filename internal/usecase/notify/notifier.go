package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ecotrack/internal/infra/mailer"
)

const (
	queueSize   = 128
	sendTimeout = 30 * time.Second
)

type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Notifier delivers mail asynchronously after the originating
// transaction has committed. Failures are logged and dropped; a dead
// mailer must never fail committed work.
type Notifier struct {
	mailer mailer.Mailer
	queue  chan Message
	wg     sync.WaitGroup
	once   sync.Once
}

func NewNotifier(m mailer.Mailer) *Notifier {
	return &Notifier{
		mailer: m,
		queue:  make(chan Message, queueSize),
	}
}

func (n *Notifier) Start() {
	n.wg.Add(1)
	go n.run()
}

func (n *Notifier) run() {
	defer n.wg.Done()
	for msg := range n.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := n.mailer.Send(ctx, msg.To, msg.Subject, msg.HTMLBody); err != nil {
			slog.Error("notification send failed", "to", msg.To, "subject", msg.Subject, "error", err.Error())
		}
		cancel()
	}
}

// Enqueue never blocks; when the queue is full the message is dropped
// with a log line.
func (n *Notifier) Enqueue(msg Message) {
	select {
	case n.queue <- msg:
	default:
		slog.Warn("notification queue full, dropping message", "to", msg.To, "subject", msg.Subject)
	}
}

// Stop closes the queue and waits for in-flight sends to drain, up to
// the context deadline.
func (n *Notifier) Stop(ctx context.Context) error {
	n.once.Do(func() { close(n.queue) })

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
