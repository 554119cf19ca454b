// SPDX-License-Identifier: MIT

package closure

import "context"

// queueItem pairs a key with its depth.
type queueItem[K comparable] struct {
	key   K
	depth int
}

// walker encapsulates mutable search state.
type walker[K comparable] struct {
	next  func(K) []K
	opts  Options
	ctx   context.Context
	queue []queueItem[K]
	res   *Result[K]
}

// BFS computes the closure of starts under next in breadth-first order.
// Every start is enqueued at depth 0 before any neighbour, duplicates among
// starts are ignored, and neighbours are enqueued in the order next returns
// them, so the discovery order is reproducible whenever next is.
// Returns ErrNilNext, ErrOptionViolation, ErrLimitExceeded or the context
// error; on failure the partial result is returned alongside the error.
func BFS[K comparable](starts []K, next func(K) []K, opts ...Option) (*Result[K], error) {
	if next == nil {
		return nil, ErrNilNext
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[K]{
		next:  next,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[K], 0, len(starts)),
		res: &Result[K]{
			Order: make([]K, 0, len(starts)),
			Depth: make(map[K]int, len(starts)),
		},
	}
	for _, s := range starts {
		if err := w.enqueue(s, 0); err != nil {
			return w.res, err
		}
	}
	return w.res, w.loop()
}

// enqueue records k at depth d unless it was already seen.
func (w *walker[K]) enqueue(k K, d int) error {
	if _, seen := w.res.Depth[k]; seen {
		return nil
	}
	if w.opts.MaxVisits > 0 && len(w.res.Order) >= w.opts.MaxVisits {
		return ErrLimitExceeded
	}
	w.res.Depth[k] = d
	w.res.Order = append(w.res.Order, k)
	w.queue = append(w.queue, queueItem[K]{key: k, depth: d})
	return nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.next(item.key) {
			if err := w.enqueue(nbr, nextDepth); err != nil {
				return err
			}
		}
	}
	return nil
}
