package runtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hearsay/contract"
	"hearsay/domain"
	"hearsay/mocks"
)

func TestListener_DispatchesAcceptedMessage(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcherMock := mocks.NewMockIDispatcher(ctrl)
	dispatched := make(chan domain.Message, 1)
	dispatcherMock.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, msg domain.Message) {
			dispatched <- msg
		}).
		Times(1)

	inbound := make(chan domain.Message, 1)
	listener := NewListener(slog.Default(), inbound, dispatcherMock,
		[]contract.Filter{TextFilter{}}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = listener.Run(ctx)
		close(done)
	}()

	inbound <- domain.NewMessage("message", "hello there")

	select {
	case msg := <-dispatched:
		req.Equal("hello there", msg.Text)
	case <-time.After(1 * time.Second):
		req.Fail("Message was not dispatched in time")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(1 * time.Second):
		req.Fail("Listener did not stop on context cancellation")
	}
}

// A message without usable text is silently dropped: no dispatch, no error.
func TestListener_FilterRejectIsSilent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcherMock := mocks.NewMockIDispatcher(ctrl)
	dispatched := make(chan domain.Message, 2)
	dispatcherMock.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, msg domain.Message) {
			dispatched <- msg
		}).
		Times(1)

	inbound := make(chan domain.Message, 4)
	listener := NewListener(slog.Default(), inbound, dispatcherMock,
		[]contract.Filter{TextFilter{}, NewKindFilter("message")}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = listener.Run(ctx) }()

	inbound <- domain.NewMessage("message", "") // no text
	inbound <- domain.NewMessage("reaction", "ping")
	inbound <- domain.NewMessage("message", "ping")

	select {
	case msg := <-dispatched:
		req.Equal("message", msg.Kind)
		req.Equal("ping", msg.Text)
	case <-time.After(1 * time.Second):
		req.Fail("Accepted message was not dispatched in time")
	}

	// No further dispatch may sneak in for the filtered messages
	select {
	case msg := <-dispatched:
		req.Failf("Unexpected dispatch", "kind=%s text=%q", msg.Kind, msg.Text)
	case <-time.After(100 * time.Millisecond):
	}
}

// Intake must survive a dispatch unit that blows up entirely.
func TestListener_MessageFailureDoesNotStopIntake(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcherMock := mocks.NewMockIDispatcher(ctrl)
	second := make(chan domain.Message, 1)
	dispatcherMock.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, msg domain.Message) {
			if msg.Text == "first" {
				panic("total message failure")
			}
			second <- msg
		}).
		Times(2)

	inbound := make(chan domain.Message, 2)
	listener := NewListener(slog.Default(), inbound, dispatcherMock,
		[]contract.Filter{TextFilter{}}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = listener.Run(ctx) }()

	inbound <- domain.NewMessage("message", "first")
	inbound <- domain.NewMessage("message", "second")

	select {
	case msg := <-second:
		req.Equal("second", msg.Text)
	case <-time.After(1 * time.Second):
		req.Fail("Second message was not dispatched after first one failed")
	}
}
