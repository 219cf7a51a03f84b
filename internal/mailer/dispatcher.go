package mailer

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-retry"

	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/domain"
)

// Sender is the delivery backend the dispatcher drains into.
type Sender interface {
	Send(email, code string, purpose domain.OTPPurpose) error
}

type message struct {
	email   string
	code    string
	purpose domain.OTPPurpose
}

// Dispatcher queues OTP emails and delivers them from a background worker,
// keeping SMTP latency out of request handlers. Each delivery is retried
// with exponential backoff before being dropped.
type Dispatcher struct {
	sender      Sender
	queue       chan message
	stopped     chan struct{}
	maxRetries  uint64
	backoffBase time.Duration
}

func NewDispatcher(sender Sender, queueSize int) *Dispatcher {
	return &Dispatcher{
		sender:      sender,
		queue:       make(chan message, queueSize),
		stopped:     make(chan struct{}),
		maxRetries:  3,
		backoffBase: 500 * time.Millisecond,
	}
}

// Start launches the worker goroutine.
func (d *Dispatcher) Start() {
	go d.run()
}

// Stop closes the queue and waits for the worker to drain it.
func (d *Dispatcher) Stop() {
	close(d.queue)
	<-d.stopped
}

// SendOTP enqueues a delivery without blocking. A full queue returns an
// error instead of stalling the request path.
func (d *Dispatcher) SendOTP(_ context.Context, email, code string, purpose domain.OTPPurpose) error {
	select {
	case d.queue <- message{email: email, code: code, purpose: purpose}:
		return nil
	default:
		return errors.New("email queue is full")
	}
}

func (d *Dispatcher) run() {
	defer close(d.stopped)

	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg message) {
	ctx := context.Background()
	backoff := retry.WithMaxRetries(d.maxRetries, retry.NewExponential(d.backoffBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := d.sender.Send(msg.email, msg.code, msg.purpose); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		log.Error().
			Err(err).
			Str("email", msg.email).
			Str("purpose", string(msg.purpose)).
			Msg("giving up on OTP email after retries")
	}
}
