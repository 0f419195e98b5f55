package cart

import (
	"context"

	"go.uber.org/zap"
)

// Sync merges the guest cart into the server cart right after login.
//
// The pushes run sequentially on purpose: the server upserts each item with
// a read-modify-write on the same cart row, so concurrent pushes for one
// cart are not guaranteed atomic. The server is the merge arbiter: guest
// quantities are added to whatever the account's cart already held.
//
// A failure mid-sequence aborts the remaining pushes, but the final fetch
// still runs so the store reflects whatever did merge.
func (s *Store) Sync(ctx context.Context) error {
	snapshot := s.Items()

	var pushErr error
	if len(snapshot) > 0 {
		s.mu.Lock()
		s.isLoading = true
		s.lastErr = nil
		s.mu.Unlock()
		s.publish()

		for _, item := range snapshot {
			if err := s.remote.Add(ctx, item.Product, item.Quantity); err != nil {
				s.log.Warn("cart sync push failed",
					zap.String("product_id", item.ID), zap.Error(err))
				pushErr = err
				break
			}
		}
	}

	fetchErr := s.FetchCart(ctx)

	if pushErr != nil {
		s.mu.Lock()
		s.recordErr(pushErr)
		s.isLoading = false
		s.mu.Unlock()
		s.publish()
		return pushErr
	}
	return fetchErr
}
