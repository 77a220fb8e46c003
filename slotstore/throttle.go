package slotstore

import (
	"context"

	"github.com/hupe1980/bigseq/resource"
)

// Throttled paces every slot read and write of the wrapped store through
// the controller's I/O limiter.
type Throttled struct {
	Store
	rc *resource.Controller
}

// NewThrottled wraps s. A nil controller disables pacing.
func NewThrottled(s Store, rc *resource.Controller) *Throttled {
	return &Throttled{Store: s, rc: rc}
}

func (t *Throttled) ReadSlot(ctx context.Context, slot int64, p []byte) (bool, error) {
	if err := t.rc.AcquireIO(ctx, len(p)); err != nil {
		return false, err
	}
	return t.Store.ReadSlot(ctx, slot, p)
}

func (t *Throttled) WriteSlot(ctx context.Context, slot int64, p []byte) error {
	if err := t.rc.AcquireIO(ctx, len(p)); err != nil {
		return err
	}
	return t.Store.WriteSlot(ctx, slot, p)
}
