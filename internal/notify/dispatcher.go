package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/metrics"
)

type message struct {
	template  Template
	recipient string
	data      map[string]string
}

// Dispatcher fans notification sends out to a small worker pool so the
// state-changing request never waits on SMTP. A full queue drops the
// message with a log line; the state transition is authoritative either
// way.
type Dispatcher struct {
	gateway Gateway
	logger  *zap.Logger

	input      chan message
	shutdownCh chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

func NewDispatcher(gateway Gateway, workerCount, queueSize int, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		gateway:    gateway,
		logger:     logger,
		input:      make(chan message, queueSize),
		shutdownCh: make(chan struct{}),
	}
	for i := 0; i < workerCount; i++ {
		d.wg.Add(1)
		go d.runWorker(i)
	}
	return d
}

// Notify enqueues a send and returns immediately.
func (d *Dispatcher) Notify(template Template, recipient string, data map[string]string) {
	msg := message{template: template, recipient: recipient, data: data}

	select {
	case d.input <- msg:
	case <-d.shutdownCh:
		d.logger.Warn("notification dropped during shutdown",
			zap.String("template", string(template)),
			zap.String("recipient", recipient))
	default:
		d.logger.Warn("notification queue full, dropping",
			zap.String("template", string(template)),
			zap.String("recipient", recipient))
	}
}

func (d *Dispatcher) runWorker(id int) {
	defer d.wg.Done()
	d.logger.Debug("notification worker started", zap.Int("worker", id))

	for {
		select {
		case msg := <-d.input:
			d.deliver(msg)
		case <-d.shutdownCh:
			// Drain whatever is still queued, then exit.
			for {
				select {
				case msg := <-d.input:
					d.deliver(msg)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(msg message) {
	if d.gateway.Send(msg.template, msg.recipient, msg.data) {
		metrics.NotificationsSentTotal.WithLabelValues(string(msg.template)).Inc()
	} else {
		metrics.OperationErrorsTotal.WithLabelValues("notify").Inc()
	}
}

// Shutdown stops intake and drains queued sends until ctx expires.
func (d *Dispatcher) Shutdown(ctx context.Context) {
	d.once.Do(func() {
		close(d.shutdownCh)

		done := make(chan struct{})
		go func() {
			d.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			d.logger.Info("notification dispatcher drained")
		case <-ctx.Done():
			d.logger.Warn("notification dispatcher shutdown timed out")
		}
	})
}
