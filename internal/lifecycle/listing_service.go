package lifecycle

import "context"

// AdvanceListing applies a sweep-driven listing transition (publish, close).
func (e *Engine) AdvanceListing(ctx context.Context, id string, kind ListingActionKind) error {
	l, err := e.store.GetListing(ctx, id)
	if err != nil {
		return err
	}
	now := e.clock.Now()
	from, to, n, err := transitionListing(l, kind, now)
	if err != nil {
		return err
	}
	if err := e.store.UpdateListingStatus(ctx, id, from, to, now); err != nil {
		return err
	}
	e.log.Infow("listing transition", "listingId", id, "action", kind, "from", from, "to", to)
	e.emit(ctx, []Notification{n})
	return nil
}
