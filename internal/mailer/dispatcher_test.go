package mailer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/domain"
)

type stubSender struct {
	mu       sync.Mutex
	calls    []message
	failures int
}

func (s *stubSender) Send(email, code string, purpose domain.OTPPurpose) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, message{email: email, code: code, purpose: purpose})
	if s.failures > 0 {
		s.failures--
		return errors.New("smtp unavailable")
	}
	return nil
}

func (s *stubSender) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func newTestDispatcher(sender Sender, queueSize int) *Dispatcher {
	d := NewDispatcher(sender, queueSize)
	d.backoffBase = time.Millisecond
	return d
}

func TestDispatcher_DeliversQueuedMessages(t *testing.T) {
	sender := &stubSender{}
	d := newTestDispatcher(sender, 4)
	d.Start()

	require.NoError(t, d.SendOTP(context.Background(), "a@example.com", "111111", domain.OTPPurposeVerify))
	require.NoError(t, d.SendOTP(context.Background(), "b@example.com", "222222", domain.OTPPurposeReset))

	// Stop drains the queue before returning.
	d.Stop()

	require.Equal(t, 2, sender.callCount())
	assert.Equal(t, "a@example.com", sender.calls[0].email)
	assert.Equal(t, domain.OTPPurposeReset, sender.calls[1].purpose)
}

func TestDispatcher_RetriesTransientFailures(t *testing.T) {
	sender := &stubSender{failures: 2}
	d := newTestDispatcher(sender, 1)
	d.Start()

	require.NoError(t, d.SendOTP(context.Background(), "a@example.com", "111111", domain.OTPPurposeVerify))
	d.Stop()

	// Two failures then a success: three attempts total.
	assert.Equal(t, 3, sender.callCount())
}

func TestDispatcher_GivesUpAfterMaxRetries(t *testing.T) {
	sender := &stubSender{failures: 100}
	d := newTestDispatcher(sender, 1)
	d.Start()

	require.NoError(t, d.SendOTP(context.Background(), "a@example.com", "111111", domain.OTPPurposeVerify))
	d.Stop()

	// Initial attempt plus maxRetries.
	assert.Equal(t, int(d.maxRetries)+1, sender.callCount())
}

func TestDispatcher_FullQueueReturnsError(t *testing.T) {
	sender := &stubSender{}
	d := newTestDispatcher(sender, 1)
	// Worker not started: the queue fills and must reject instead of block.

	require.NoError(t, d.SendOTP(context.Background(), "a@example.com", "111111", domain.OTPPurposeVerify))
	err := d.SendOTP(context.Background(), "b@example.com", "222222", domain.OTPPurposeVerify)
	assert.Error(t, err)
}
