package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrNothingToDo is returned by a lenient step that found its record already
// handled, such as a reminder claimed by an earlier run. It counts as skipped.
var ErrNothingToDo = errors.New("nothing to do")

// Report is the outcome of one lenient batch. It is the sweep's call-site of
// the same transitions the Engine runs strictly: errors are collected per
// record instead of aborting the batch.
type Report struct {
	Pass       string        `json:"pass"`
	Candidates int           `json:"candidates"`
	Applied    int           `json:"applied"`
	Skipped    int           `json:"skipped"`
	Failed     int           `json:"failed"`
	Errors     []error       `json:"-"`
	Started    time.Time     `json:"started"`
	Duration   time.Duration `json:"duration"`
}

// NewReport starts a report for pass at now.
func NewReport(pass string, now time.Time) *Report {
	return &Report{Pass: pass, Started: now}
}

// Record counts the outcome of one record. A transition that no longer
// applies, a guard that does not hold yet and a vanished record are skips;
// everything else is a failure.
func (r *Report) Record(id string, err error) {
	switch {
	case err == nil:
		r.Applied++
	case errors.Is(err, ErrNothingToDo),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrGuardViolation),
		errors.Is(err, ErrNotFound):
		r.Skipped++
	default:
		r.Failed++
		r.Errors = append(r.Errors, errors.Wrapf(err, "%s %s", r.Pass, id))
	}
}

// Merge folds o into r.
func (r *Report) Merge(o *Report) {
	r.Candidates += o.Candidates
	r.Applied += o.Applied
	r.Skipped += o.Skipped
	r.Failed += o.Failed
	r.Errors = append(r.Errors, o.Errors...)
}

// Err joins the collected failures, or nil.
func (r *Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return errors.Join(r.Errors...)
}

func (r *Report) String() string {
	return fmt.Sprintf("%s: candidates=%d applied=%d skipped=%d failed=%d in %s",
		r.Pass, r.Candidates, r.Applied, r.Skipped, r.Failed, r.Duration.Round(time.Millisecond))
}

// RunLenient applies fn to every item and records each outcome in r. A panic
// in fn is recovered and recorded as a failure of that item only.
func RunLenient[T any](ctx context.Context, r *Report, items []T, id func(T) string, fn func(context.Context, T) error) {
	r.Candidates += len(items)
	for _, it := range items {
		r.Record(id(it), safeCall(ctx, it, fn))
	}
}

func safeCall[T any](ctx context.Context, it T, fn func(context.Context, T) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Newf("panic: %v", p)
		}
	}()
	return fn(ctx, it)
}
