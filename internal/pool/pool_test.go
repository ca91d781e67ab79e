package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsAllTasks(t *testing.T) {
	p := New(4)
	defer p.Shutdown()

	var ran atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		err := p.Submit(context.Background(), func() {
			defer wg.Done()
			ran.Add(1)
		})
		require.NoError(t, err)
	}
	wg.Wait()

	assert.Equal(t, int64(100), ran.Load())
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	p := New(1)
	p.Shutdown()

	// The task buffer still has free slots after shutdown; Submit must
	// refuse every attempt rather than park a task nothing will drain.
	var ran atomic.Int64
	for i := 0; i < 16; i++ {
		err := p.Submit(context.Background(), func() { ran.Add(1) })
		assert.ErrorIs(t, err, ErrShutdown)
	}
	assert.Equal(t, int64(0), ran.Load())
}

func TestPool_SubmitHonorsContext(t *testing.T) {
	p := New(1)
	defer p.Shutdown()

	// Fill the single worker and the buffer with blocking tasks.
	release := make(chan struct{})
	for i := 0; i < 3; i++ {
		_ = p.Submit(context.Background(), func() { <-release })
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Submit(ctx, func() {})
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
}

func TestPool_ShutdownIsIdempotent(t *testing.T) {
	p := New(2)
	p.Shutdown()
	assert.NotPanics(t, func() { p.Shutdown() })
}
