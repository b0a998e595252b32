package notify

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/shulepay/shulepay/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

// syncPool runs tasks inline so tests see delivery synchronously.
type syncPool struct{}

func (syncPool) AddTask(_ context.Context, task Task) error { return task() }
func (syncPool) Close()                                     {}

func newDispatcher(t *testing.T) (*Dispatcher, *MockAddressBook, *MockSender) {
	ctrl := gomock.NewController(t)
	addressBook := NewMockAddressBook(ctrl)
	sender := NewMockSender(ctrl)
	d := &Dispatcher{
		addressBook: addressBook,
		senders: map[string]Sender{
			domain.NotifyEmail: sender,
			domain.NotifySMS:   sender,
		},
		workerPool: syncPool{},
	}
	return d, addressBook, sender
}

func TestDispatch(t *testing.T) {
	user := &domain.User{ID: 7, Login: "jane@shulepay.co.ke", FullName: "Jane Wanjiku"}
	notification := domain.Notification{
		Channel:     domain.NotifyEmail,
		RecipientID: 7,
		Subject:     "Payment received",
		Body:        "Thank you.",
	}

	tests := []struct {
		name          string
		notifications []domain.Notification
		prepareMock   func(ab *MockAddressBook, s *MockSender)
		expectedErrs  int
	}{
		{
			name:          "Delivers to resolved recipient",
			notifications: []domain.Notification{notification},
			prepareMock: func(ab *MockAddressBook, s *MockSender) {
				ab.EXPECT().GetByID(gomock.Any(), 7).Return(user, nil)
				s.EXPECT().Send(gomock.Any(), user, notification).Return(nil)
			},
			expectedErrs: 0,
		},
		{
			name: "Unknown channel reported",
			notifications: []domain.Notification{
				{Channel: "pigeon", RecipientID: 7},
			},
			prepareMock:  func(ab *MockAddressBook, s *MockSender) {},
			expectedErrs: 1,
		},
		{
			name:          "Recipient lookup error reported",
			notifications: []domain.Notification{notification},
			prepareMock: func(ab *MockAddressBook, s *MockSender) {
				ab.EXPECT().GetByID(gomock.Any(), 7).Return(nil, errors.New("db error"))
			},
			expectedErrs: 1,
		},
		{
			name:          "Recipient not found reported",
			notifications: []domain.Notification{notification},
			prepareMock: func(ab *MockAddressBook, s *MockSender) {
				ab.EXPECT().GetByID(gomock.Any(), 7).Return(nil, nil)
			},
			expectedErrs: 1,
		},
		{
			name: "Partial failure still delivers the rest",
			notifications: []domain.Notification{
				{Channel: "pigeon", RecipientID: 7},
				notification,
			},
			prepareMock: func(ab *MockAddressBook, s *MockSender) {
				ab.EXPECT().GetByID(gomock.Any(), 7).Return(user, nil)
				s.EXPECT().Send(gomock.Any(), user, notification).Return(nil)
			},
			expectedErrs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, addressBook, sender := newDispatcher(t)
			tt.prepareMock(addressBook, sender)

			errs := d.Dispatch(context.Background(), tt.notifications)
			assert.Len(t, errs, tt.expectedErrs)
		})
	}
}

func TestConsoleSenderNeverFails(t *testing.T) {
	s := NewConsoleSender(domain.NotifySMS)
	err := s.Send(context.Background(), &domain.User{ID: 1, Login: "jane@shulepay.co.ke"}, domain.Notification{
		Channel: domain.NotifySMS,
		Body:    "Payment of 150.00 received.",
	})
	assert.NoError(t, err)
}

func TestWorkerPool(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	done := make(chan struct{})
	err := wp.AddTask(context.Background(), func() error {
		close(done)
		return nil
	})
	assert.NoError(t, err)
	<-done

	// exhaust the pool, then a canceled context must be rejected
	blocked := make(chan struct{})
	defer close(blocked)
	wp.AddTask(context.Background(), func() error { <-blocked; return nil })
	wp.AddTask(context.Background(), func() error { <-blocked; return nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

// Close must let the workers finish whatever is still queued before
// returning, not drop it.
func TestWorkerPool_CloseDrainsQueue(t *testing.T) {
	wp := NewWorkerPool(1)

	release := make(chan struct{})
	var delivered atomic.Int32
	err := wp.AddTask(context.Background(), func() error {
		<-release
		delivered.Add(1)
		return nil
	})
	assert.NoError(t, err)

	// second task sits in the queue behind the blocked one
	err = wp.AddTask(context.Background(), func() error {
		delivered.Add(1)
		return nil
	})
	assert.NoError(t, err)

	close(release)
	wp.Close()
	assert.Equal(t, int32(2), delivered.Load())
}
