package host_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/broadcast/core/host"
	"github.com/dmitrymomot/broadcast/core/receiver"
)

func TestSerialScheduler_RunsInOrder(t *testing.T) {
	t.Parallel()

	s := host.NewSerialScheduler()
	defer s.Close()

	results := make(chan int, 3)
	for i := 1; i <= 3; i++ {
		i := i
		s.Schedule(func() { results <- i })
	}

	for want := 1; want <= 3; want++ {
		select {
		case got := <-results:
			assert.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatal("scheduled function did not run")
		}
	}
}

func TestSerialScheduler_DeliversBroadcasts(t *testing.T) {
	t.Parallel()

	h := host.NewMemoryHost("com.example.app", 33)
	defer h.Close()

	s := host.NewSerialScheduler()
	defer s.Close()

	ctx := context.Background()
	received := make(chan receiver.Broadcast, 1)

	_, err := receiver.RegisterWith(ctx, h,
		receiver.ReceiverFunc(func(_ context.Context, b receiver.Broadcast) {
			received <- b
		}),
		receiver.NewFilter("sync.done"), "", s, receiver.Exported)
	require.NoError(t, err)

	b := receiver.NewBroadcast("sync.done", nil)
	assert.Equal(t, 1, h.Broadcast(ctx, b))

	select {
	case got := <-received:
		assert.Equal(t, b.ID, got.ID)
	case <-time.After(time.Second):
		t.Fatal("broadcast was not delivered through the scheduler")
	}
}

func TestSerialScheduler_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	s := host.NewSerialScheduler()
	s.Close()
	s.Close()

	// Scheduling after close drops the work instead of blocking.
	done := make(chan struct{})
	go func() {
		s.Schedule(func() {})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Schedule blocked after Close")
	}
}
