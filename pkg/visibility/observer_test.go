package visibility_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creemers/site/pkg/disclosure"
	"github.com/creemers/site/pkg/visibility"
)

type recorder struct {
	mu     sync.Mutex
	ids    []disclosure.ID
	block  chan struct{}
	reject map[disclosure.ID]error
}

func (r *recorder) MarkVisible(_ context.Context, id disclosure.ID) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reject[id]; err != nil {
		return err
	}
	r.ids = append(r.ids, id)
	return nil
}

func (r *recorder) marked() []disclosure.ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]disclosure.ID(nil), r.ids...)
}

func visible(id disclosure.ID) visibility.Entry {
	return visibility.Entry{ID: id, Intersecting: true, Ratio: 0.5}
}

func newObserver(t *testing.T, m visibility.Marker, opts ...visibility.Option) *visibility.Observer {
	t.Helper()

	o, err := visibility.New(m, append([]visibility.Option{visibility.WithStrict(true)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = o.Close() })
	return o
}

func TestNew(t *testing.T) {
	_, err := visibility.New(nil)
	assert.ErrorIs(t, err, visibility.ErrNilMarker)

	for _, ratio := range []float64{0, -0.1, 1.5} {
		_, err := visibility.New(&recorder{}, visibility.WithThreshold(ratio))
		assert.ErrorIs(t, err, visibility.ErrInvalidThreshold)
	}

	o, err := visibility.New(&recorder{}, visibility.WithThreshold(1))
	require.NoError(t, err)
	require.NoError(t, o.Close())
}

func TestObserver_OneShot(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	o := newObserver(t, rec)

	require.NoError(t, o.Observe(ctx, 0, 1, 2, 3))
	require.NoError(t, o.Start(ctx))

	require.NoError(t, o.Notify(ctx, visible(1)))
	require.NoError(t, o.Notify(ctx, visible(1)), "repeat entries of a reported id are ignored")

	require.Eventually(t, func() bool { return len(rec.marked()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []disclosure.ID{1}, rec.marked())
	assert.Equal(t, []disclosure.ID{0, 2, 3}, o.Watching())
}

func TestObserver_Threshold(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	o := newObserver(t, rec, visibility.WithThreshold(0.25))

	require.NoError(t, o.Observe(ctx, 0))
	require.NoError(t, o.Notify(ctx,
		visibility.Entry{ID: 0, Intersecting: true, Ratio: 0.2},
		visibility.Entry{ID: 0, Intersecting: false, Ratio: 0.9},
	))
	assert.Equal(t, []disclosure.ID{0}, o.Watching(), "still watching")

	require.NoError(t, o.Notify(ctx, visibility.Entry{ID: 0, Intersecting: true, Ratio: 0.25}))
	assert.Empty(t, o.Watching())
}

func TestObserver_OrderAndQueueBeforeStart(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	o := newObserver(t, rec)

	require.NoError(t, o.Observe(ctx, 0, 1, 2, 3))
	require.NoError(t, o.Notify(ctx, visible(3), visible(0)))
	require.NoError(t, o.Notify(ctx, visible(2)))
	assert.Empty(t, rec.marked(), "nothing delivered before Start")

	require.NoError(t, o.Start(ctx))
	require.Eventually(t, func() bool { return len(rec.marked()) == 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []disclosure.ID{3, 0, 2}, rec.marked())

	assert.ErrorIs(t, o.Start(ctx), visibility.ErrAlreadyStarted)
}

func TestObserver_UnknownTarget(t *testing.T) {
	ctx := context.Background()

	t.Run("strict", func(t *testing.T) {
		o := newObserver(t, &recorder{})
		err := o.Notify(ctx, visible(9))
		assert.ErrorIs(t, err, visibility.ErrUnknownTarget)
		assert.ErrorIs(t, err, disclosure.ErrInvariantViolation)

		assert.ErrorIs(t, o.Observe(ctx, disclosure.None), visibility.ErrUnknownTarget)
	})

	t.Run("lenient", func(t *testing.T) {
		rec := &recorder{}
		o := newObserver(t, rec, visibility.WithStrict(false))
		require.NoError(t, o.Observe(ctx, disclosure.None, 1))
		require.NoError(t, o.Start(ctx))

		assert.NoError(t, o.Notify(ctx, visible(9), visible(1)))
		require.Eventually(t, func() bool { return len(rec.marked()) == 1 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, []disclosure.ID{1}, rec.marked())
	})
}

func TestObserver_MixedBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("strict rejects the whole batch", func(t *testing.T) {
		rec := &recorder{}
		o := newObserver(t, rec)
		require.NoError(t, o.Observe(ctx, 0))
		require.NoError(t, o.Start(ctx))

		err := o.Notify(ctx, visible(0), visible(7))
		require.ErrorIs(t, err, visibility.ErrUnknownTarget)
		assert.Equal(t, []disclosure.ID{0}, o.Watching(), "valid entry is not applied")

		require.NoError(t, o.Notify(ctx, visible(0)))
		require.Eventually(t, func() bool { return len(rec.marked()) == 1 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, []disclosure.ID{0}, rec.marked())
		assert.Empty(t, o.Watching())
	})

	t.Run("lenient delivers the valid entry", func(t *testing.T) {
		rec := &recorder{}
		o := newObserver(t, rec, visibility.WithStrict(false))
		require.NoError(t, o.Observe(ctx, 0))
		require.NoError(t, o.Start(ctx))

		require.NoError(t, o.Notify(ctx, visible(0), visible(7)))
		require.Eventually(t, func() bool { return len(rec.marked()) == 1 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, []disclosure.ID{0}, rec.marked())
		assert.Empty(t, o.Watching())
	})
}

func TestObserver_Unobserve(t *testing.T) {
	ctx := context.Background()
	o := newObserver(t, &recorder{})

	require.NoError(t, o.Observe(ctx, 0, 1))
	o.Unobserve(0)
	o.Unobserve(42)
	assert.Equal(t, []disclosure.ID{1}, o.Watching())
	assert.ErrorIs(t, o.Notify(ctx, visible(0)), visibility.ErrUnknownTarget)
}

func TestObserver_Reobserve(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	o := newObserver(t, rec)
	require.NoError(t, o.Start(ctx))

	require.NoError(t, o.Observe(ctx, 2))
	require.NoError(t, o.Notify(ctx, visible(2)))
	require.NoError(t, o.Observe(ctx, 2))
	require.NoError(t, o.Notify(ctx, visible(2)))

	require.Eventually(t, func() bool { return len(rec.marked()) == 2 }, time.Second, 5*time.Millisecond)
}

func TestObserver_NoDeliveryAfterClose(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{block: make(chan struct{})}
	o, err := visibility.New(rec)
	require.NoError(t, err)

	require.NoError(t, o.Observe(ctx, 0, 1, 2))
	require.NoError(t, o.Start(ctx))
	require.NoError(t, o.Notify(ctx, visible(0), visible(1), visible(2)))

	closed := make(chan struct{})
	go func() {
		// Unblock the in-flight delivery of 0 once Close is waiting for it.
		time.Sleep(20 * time.Millisecond)
		close(rec.block)
	}()
	go func() {
		defer close(closed)
		_ = o.Close()
	}()

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close did not return")
	}

	got := rec.marked()
	assert.LessOrEqual(t, len(got), 1, "queued events racing teardown are dropped")
	assert.Empty(t, o.Watching())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, got, rec.marked(), "nothing delivered after Close")

	assert.ErrorIs(t, o.Notify(ctx, visible(0)), visibility.ErrObserverClosed)
	assert.ErrorIs(t, o.Observe(ctx, 0), visibility.ErrObserverClosed)
	assert.ErrorIs(t, o.Start(ctx), visibility.ErrObserverClosed)
	require.NoError(t, o.Close())
}

func TestObserver_ContextCancelTearsDown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := &recorder{}
	o := newObserver(t, rec)

	require.NoError(t, o.Observe(ctx, 0, 1))
	require.NoError(t, o.Start(ctx))
	cancel()

	require.Eventually(t, func() bool {
		return errors.Is(o.Notify(context.Background(), visible(0)), visibility.ErrObserverClosed)
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, o.Watching())
	assert.Empty(t, rec.marked())
}

func TestObserver_MarkerErrorIsNotRepublished(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{reject: map[disclosure.ID]error{0: errors.New("boom")}}
	o := newObserver(t, rec)
	sub := o.Subscribe(ctx)

	require.NoError(t, o.Observe(ctx, 0, 1))
	require.NoError(t, o.Start(ctx))
	require.NoError(t, o.Notify(ctx, visible(0)))
	require.NoError(t, o.Notify(ctx, visible(1)))

	select {
	case msg := <-sub.Receive(ctx):
		assert.Equal(t, disclosure.ID(1), msg.Data)
	case <-time.After(time.Second):
		t.Fatal("no delivery")
	}
}

func TestObserver_DrivesController(t *testing.T) {
	ctx := context.Background()
	c, err := disclosure.NewController(4, disclosure.WithStrict(true))
	require.NoError(t, err)
	defer c.Close()

	o := newObserver(t, c)
	sub := o.Subscribe(ctx)
	require.NoError(t, o.Observe(ctx, 0, 1, 2, 3))
	require.NoError(t, o.Start(ctx))

	require.NoError(t, o.Notify(ctx, visible(1)))
	<-sub.Receive(ctx)
	require.NoError(t, o.Notify(ctx, visible(1)))

	assert.Equal(t, []disclosure.ID{1}, c.State().Visited)
}
