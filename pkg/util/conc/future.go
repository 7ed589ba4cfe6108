// Licensed to the Strata project under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. The Strata project licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package conc

// future is a minimal read-only view used by the helpers that operate on
// batches of futures with mixed value types.
type future interface {
	OK() bool
	Err() error
}

// Future carries the result of an asynchronous task.
type Future[T any] struct {
	ch    chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		ch: make(chan struct{}),
	}
}

// Await blocks until the task completes and returns its result and error.
func (future *Future[T]) Await() (T, error) {
	<-future.ch
	return future.value, future.err
}

// Value blocks until the task completes and returns its result, discarding
// any error.
func (future *Future[T]) Value() T {
	<-future.ch
	return future.value
}

// OK blocks until the task completes and reports whether it succeeded.
func (future *Future[T]) OK() bool {
	<-future.ch
	return future.err == nil
}

// Err blocks until the task completes and returns its error.
func (future *Future[T]) Err() error {
	<-future.ch
	return future.err
}

// Inner exposes the completion channel for select statements.
func (future *Future[T]) Inner() <-chan struct{} {
	return future.ch
}

// Go spawns a plain goroutine executing fn and returns its future. Use a
// Pool to bound concurrency instead.
func Go[T any](fn func() (T, error)) *Future[T] {
	future := newFuture[T]()
	go func() {
		defer close(future.ch)
		future.value, future.err = fn()
	}()
	return future
}

// AwaitAll waits on the futures in order and returns the first error met,
// without waiting for the remaining ones.
func AwaitAll[T future](futures ...T) error {
	for i := range futures {
		if !futures[i].OK() {
			return futures[i].Err()
		}
	}

	return nil
}

// BlockOnAll waits until every future completes and returns the last error
// met, if any.
func BlockOnAll[T future](futures ...T) error {
	var lastErr error
	for i := range futures {
		if err := futures[i].Err(); err != nil {
			lastErr = err
		}
	}

	return lastErr
}
