package lifecycle_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmate/placement-service/internal/lifecycle"
)

func TestReport_Record(t *testing.T) {
	r := lifecycle.NewReport("applications", epoch)

	r.Record("a", nil)
	r.Record("b", lifecycle.ErrNothingToDo)
	r.Record("c", lifecycle.Stale("application", "c"))
	r.Record("d", lifecycle.NotFound("application", "d"))
	r.Record("e", lifecycle.TransientStore(errors.New("connection reset"), "update"))

	assert.Equal(t, 1, r.Applied)
	assert.Equal(t, 3, r.Skipped)
	assert.Equal(t, 1, r.Failed)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Error(), "applications e")
	assert.ErrorIs(t, r.Err(), lifecycle.ErrTransientStore)
}

func TestRunLenient_ContinuesPastFailures(t *testing.T) {
	r := lifecycle.NewReport("employments", epoch)
	var seen []string

	lifecycle.RunLenient(context.Background(), r, []string{"ok", "boom", "panic", "ok2"},
		func(s string) string { return s },
		func(_ context.Context, s string) error {
			seen = append(seen, s)
			switch s {
			case "boom":
				return errors.New("boom")
			case "panic":
				panic("bad record")
			}
			return nil
		})

	assert.Equal(t, []string{"ok", "boom", "panic", "ok2"}, seen)
	assert.Equal(t, 4, r.Candidates)
	assert.Equal(t, 2, r.Applied)
	assert.Equal(t, 2, r.Failed)
	assert.Contains(t, r.Err().Error(), "bad record")
}

func TestReport_Merge(t *testing.T) {
	a := lifecycle.NewReport("all", epoch)
	a.Candidates, a.Applied = 2, 2
	b := lifecycle.NewReport("listings", epoch)
	b.Candidates = 1
	b.Record("x", errors.New("down"))

	a.Merge(b)
	assert.Equal(t, 3, a.Candidates)
	assert.Equal(t, 1, a.Failed)
	assert.Len(t, a.Errors, 1)
	assert.Contains(t, a.String(), "candidates=3 applied=2 skipped=0 failed=1")

	assert.NoError(t, lifecycle.NewReport("empty", epoch).Err())
}
