// Copyright 2026 Bryan Silverthorn. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package labor

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRunWorkersDrainQueue(t *testing.T) {
	q := NewQueue()
	var done int64
	for i := 0; i < 100; i++ {
		q.Push(JobFunc(func(ctx context.Context) error {
			atomic.AddInt64(&done, 1)
			return nil
		}))
	}
	require.Equal(t, 100, q.Len())

	err := RunWorkers(context.Background(), q, 4)
	require.NoError(t, err)
	require.EqualValues(t, 100, atomic.LoadInt64(&done))
	require.Equal(t, 0, q.Len())
}

func TestWorkerTerminatesOnEmptyQueue(t *testing.T) {
	w := NewWorker(NewQueue())
	require.NoError(t, w.Labor(context.Background()))
}

func TestWorkerReportsJobError(t *testing.T) {
	boom := errors.New("boom")
	q := NewQueue()
	q.Push(
		JobFunc(func(ctx context.Context) error { return nil }),
		JobFunc(func(ctx context.Context) error { return boom }),
	)

	err := RunWorkers(context.Background(), q, 1)
	require.ErrorIs(t, err, boom)
}

func TestWorkerHonorsCancellation(t *testing.T) {
	q := NewQueue()
	q.Push(JobFunc(func(ctx context.Context) error { return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWorker(q).Labor(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, q.Len())
}

func TestWorkerIdentitiesDistinct(t *testing.T) {
	q := NewQueue()
	require.NotEqual(t, NewWorker(q).ID(), NewWorker(q).ID())
}
