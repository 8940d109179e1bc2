package postgres

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"jobmate/placement-service/internal/lifecycle"
)

// stageRecord is the JSONB form of lifecycle.Stage.
type stageRecord struct {
	Type       string         `json:"type"`
	At         *time.Time     `json:"at,omitempty"`
	Location   string         `json:"location,omitempty"`
	SentAt     *time.Time     `json:"sentAt,omitempty"`
	ValidUntil *time.Time     `json:"validUntil,omitempty"`
	LetterKey  string         `json:"letterKey,omitempty"`
	By         lifecycle.Role `json:"by,omitempty"`
	Reason     string         `json:"reason,omitempty"`
}

const (
	stageInterview = "interview"
	stageOffer     = "offer"
	stageRejection = "rejection"
)

// encodeStage returns the JSONB value for st and the denormalised offer
// expiry used by the sweep filters.
func encodeStage(st lifecycle.Stage) ([]byte, *time.Time, error) {
	var (
		rec        stageRecord
		offerUntil *time.Time
	)
	switch v := st.(type) {
	case nil:
		return nil, nil, nil
	case lifecycle.InterviewStage:
		rec = stageRecord{Type: stageInterview, At: &v.At, Location: v.Location}
	case lifecycle.OfferStage:
		rec = stageRecord{Type: stageOffer, SentAt: &v.SentAt, ValidUntil: &v.ValidUntil, LetterKey: v.LetterKey}
		offerUntil = &v.ValidUntil
	case lifecycle.RejectionStage:
		rec = stageRecord{Type: stageRejection, By: v.By, Reason: v.Reason}
	default:
		return nil, nil, errors.Newf("unsupported stage %T", st)
	}
	b, err := json.Marshal(rec)
	return b, offerUntil, err
}

func decodeStage(b []byte) (lifecycle.Stage, error) {
	if len(b) == 0 || string(b) == "null" {
		return nil, nil
	}
	var rec stageRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, errors.Wrap(err, "decode stage")
	}
	switch rec.Type {
	case stageInterview:
		return lifecycle.InterviewStage{At: deref(rec.At), Location: rec.Location}, nil
	case stageOffer:
		return lifecycle.OfferStage{SentAt: deref(rec.SentAt), ValidUntil: deref(rec.ValidUntil), LetterKey: rec.LetterKey}, nil
	case stageRejection:
		return lifecycle.RejectionStage{By: rec.By, Reason: rec.Reason}, nil
	}
	return nil, errors.Newf("unknown stage type %q", rec.Type)
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// jsonb marshals v, mapping nil slices to an empty array.
func jsonb[T any](v []T) ([]byte, error) {
	if v == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v)
}
