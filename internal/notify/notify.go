// Package notify delivers reconciliation notifications. Dispatch is
// fire-and-forget through a worker pool: delivery problems are reported
// back as warnings and logged, never propagated as reconciliation
// failures.
package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shulepay/shulepay/internal/config"
	"github.com/shulepay/shulepay/internal/domain"
)

const poolSize = 10

// AddressBook resolves a recipient id to the user it belongs to.
type AddressBook interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
}

// Sender delivers a single rendered notification to a resolved user.
type Sender interface {
	Send(ctx context.Context, recipient *domain.User, n domain.Notification) error
}

type Dispatcher struct {
	addressBook AddressBook
	senders     map[string]Sender
	workerPool  WorkerPoolI
}

func NewDispatcher(cfg *config.Config, addressBook AddressBook) *Dispatcher {
	var email Sender
	if cfg.SendgridKey != "" {
		email = NewSendgridSender(cfg)
	} else {
		email = NewConsoleSender(domain.NotifyEmail)
	}

	return &Dispatcher{
		addressBook: addressBook,
		senders: map[string]Sender{
			domain.NotifyEmail: email,
			domain.NotifySMS:   NewConsoleSender(domain.NotifySMS),
		},
		workerPool: NewWorkerPool(poolSize),
	}
}

// Dispatch queues every notification for asynchronous delivery and returns
// the problems found while queueing. Delivery itself happens on the worker
// pool; its failures are logged by the pool.
func (d *Dispatcher) Dispatch(ctx context.Context, notifications []domain.Notification) []error {
	var errs []error

	var g errgroup.Group
	for _, n := range notifications {
		n := n

		sender, ok := d.senders[n.Channel]
		if !ok {
			errs = append(errs, fmt.Errorf("no sender for channel %q", n.Channel))
			continue
		}

		recipient, err := d.addressBook.GetByID(ctx, n.RecipientID)
		if err != nil {
			errs = append(errs, fmt.Errorf("resolve recipient %d: %w", n.RecipientID, err))
			continue
		}
		if recipient == nil {
			errs = append(errs, fmt.Errorf("recipient %d not found", n.RecipientID))
			continue
		}

		g.Go(func() error {
			return d.workerPool.AddTask(ctx, func() error {
				return sender.Send(context.Background(), recipient, n)
			})
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Warn("failed to queue notifications", zap.Error(err))
		errs = append(errs, err)
	}
	return errs
}

func (d *Dispatcher) Close() {
	d.workerPool.Close()
}
