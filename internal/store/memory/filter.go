package memory

import (
	"slices"
	"time"

	"github.com/cockroachdb/errors"

	"jobmate/placement-service/internal/lifecycle"
)

func errUnknownReminder(kind lifecycle.ReminderKind) error {
	return errors.Newf("unknown reminder kind %q", kind)
}

func matchApplication(a *lifecycle.Application, f lifecycle.ApplicationFilter) bool {
	if f.ApplicantID != "" && a.ApplicantID != f.ApplicantID {
		return false
	}
	if f.CompanyID != "" && a.CompanyID != f.CompanyID {
		return false
	}
	if f.ListingID != "" && a.ListingID != f.ListingID {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, a.Status) {
		return false
	}
	if f.ValidityBefore != nil && !a.ValidityUntil.Before(*f.ValidityBefore) {
		return false
	}
	if !past(f.After, a.CreatedAt, a.ID) {
		return false
	}
	if f.OfferExpiresBefore != nil || f.OfferExpiresAfter != nil || f.OfferNotReminded {
		offer, ok := a.Offer()
		if !ok {
			return false
		}
		if f.OfferExpiresBefore != nil && !offer.ValidUntil.Before(*f.OfferExpiresBefore) {
			return false
		}
		if f.OfferExpiresAfter != nil && offer.ValidUntil.Before(*f.OfferExpiresAfter) {
			return false
		}
		if f.OfferNotReminded && a.OfferRemindedAt != nil {
			return false
		}
	}
	return true
}

func matchEmployment(e *lifecycle.Employment, f lifecycle.EmploymentFilter) bool {
	if f.ApplicantID != "" && e.ApplicantID != f.ApplicantID {
		return false
	}
	if f.CompanyID != "" && e.CompanyID != f.CompanyID {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, e.Status) {
		return false
	}
	if f.StartOnOrBefore != nil && e.StartDate.After(*f.StartOnOrBefore) {
		return false
	}
	if f.EndOnOrBefore != nil && e.EndDate.After(*f.EndOnOrBefore) {
		return false
	}
	if !past(f.After, e.CreatedAt, e.ID) {
		return false
	}
	if r := f.ReminderDue; r != nil {
		stamp := e.TimesheetRemindedAt
		if r.Kind == lifecycle.ReminderClosure {
			stamp = e.ClosureRemindedAt
		}
		if !reminderDue(stamp, r.Before) {
			return false
		}
	}
	return true
}

func matchListing(l *lifecycle.Listing, f lifecycle.ListingFilter) bool {
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, l.Status) {
		return false
	}
	if f.PublishOnOrBefore != nil && (l.PublishAt == nil || l.PublishAt.After(*f.PublishOnOrBefore)) {
		return false
	}
	if f.ExpiresOnOrBefore != nil && l.ExpiresAt.After(*f.ExpiresOnOrBefore) {
		return false
	}
	if f.ExpiresAfter != nil && !l.ExpiresAt.After(*f.ExpiresAfter) {
		return false
	}
	if !past(f.After, l.CreatedAt, l.ID) {
		return false
	}
	if f.ReminderDue != nil && !reminderDue(l.LastExpiryReminderAt, f.ReminderDue.Before) {
		return false
	}
	return true
}

func reminderDue(stamp *time.Time, before time.Time) bool {
	return stamp == nil || !stamp.After(before)
}

// past reports whether (at, id) sorts after c.
func past(c *lifecycle.Cursor, at time.Time, id string) bool {
	if c == nil {
		return true
	}
	return at.After(c.CreatedAt) || (at.Equal(c.CreatedAt) && id > c.ID)
}
