package lifecycle

import (
	"slices"
	"time"
)

// ListingStatus of a job listing. Only the sweep moves listings between
// APPROVED, ACTIVE and CLOSED; authoring happens elsewhere.
type ListingStatus string

const (
	ListingDraft           ListingStatus = "DRAFT"
	ListingPendingApproval ListingStatus = "PENDING_APPROVAL"
	ListingApproved        ListingStatus = "APPROVED"
	ListingActive          ListingStatus = "ACTIVE"
	ListingClosed          ListingStatus = "CLOSED"
)

// Listing is the read model of a job listing the lifecycle depends on.
type Listing struct {
	ID                   string
	CompanyID            string
	Title                string
	Status               ListingStatus
	PublishAt            *time.Time
	ExpiresAt            time.Time
	StartDate            time.Time
	EndDate              time.Time
	RequiredDocs         []string
	LastExpiryReminderAt *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Clone returns a copy safe to mutate.
func (l *Listing) Clone() *Listing {
	c := *l
	c.PublishAt = clonePtr(l.PublishAt)
	c.LastExpiryReminderAt = clonePtr(l.LastExpiryReminderAt)
	c.RequiredDocs = slices.Clone(l.RequiredDocs)
	return &c
}

// ListingActionKind names a sweep-driven listing transition.
type ListingActionKind string

const (
	ActionPublishListing ListingActionKind = "publish"
	ActionCloseListing   ListingActionKind = "close"
)

var listingRules = map[ListingActionKind]struct {
	from ListingStatus
	to   ListingStatus
}{
	ActionPublishListing: {ListingApproved, ListingActive},
	ActionCloseListing:   {ListingActive, ListingClosed},
}

// transitionListing checks the time guard of kind and returns the status pair
// for the conditional update.
func transitionListing(l *Listing, kind ListingActionKind, now time.Time) (from, to ListingStatus, n Notification, err error) {
	rule, ok := listingRules[kind]
	if !ok || l.Status != rule.from {
		return "", "", Notification{}, invalidTransition("listing", l.Status, string(kind))
	}
	data := map[string]string{"listingId": l.ID}
	switch kind {
	case ActionPublishListing:
		if l.PublishAt == nil || l.PublishAt.After(now) {
			return "", "", Notification{}, guardViolation("listing %s is not scheduled to publish yet", l.ID)
		}
		n = toCompany(l.CompanyID, NotifyListingPublished, "Listing published", l.Title+" is now live.", data)
	case ActionCloseListing:
		if l.ExpiresAt.After(now) {
			return "", "", Notification{}, guardViolation("listing %s expires at %s", l.ID, l.ExpiresAt.Format(time.RFC3339))
		}
		n = toCompany(l.CompanyID, NotifyListingClosed, "Listing closed", l.Title+" has expired.", data)
	}
	return rule.from, rule.to, n, nil
}
