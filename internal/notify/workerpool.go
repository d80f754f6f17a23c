package notify

import (
	"context"

	"go.uber.org/zap"
)

type deliveryFunc func() error

// deliveryPool bounds how many webhook deliveries run at once so a
// slow receiver cannot pile up goroutines.
type deliveryPool struct {
	queue chan deliveryFunc
}

func newDeliveryPool(workers int) *deliveryPool {
	p := &deliveryPool{queue: make(chan deliveryFunc, workers)}
	for i := 0; i < workers; i++ {
		go p.drain()
	}
	return p
}

func (p *deliveryPool) drain() {
	for deliver := range p.queue {
		if err := deliver(); err != nil {
			zap.L().Error("notification delivery failed", zap.Error(err))
		}
	}
}

func (p *deliveryPool) submit(ctx context.Context, deliver deliveryFunc) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.queue <- deliver:
		return nil
	}
}

func (p *deliveryPool) close() {
	select {
	case <-p.queue:
	default:
		close(p.queue)
	}
}
