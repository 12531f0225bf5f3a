//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"shopdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesMarkedSentinel(t *testing.T) {
	sentinel := errs.New("invalid request payload")
	cause := errs.New("quantity must be positive")
	marked := errs.Mark(cause, sentinel)

	assert.True(t, errs.Is(marked, sentinel), "mark must be matchable")
	assert.True(t, errs.Is(marked, cause), "cause chain must stay matchable")

	// The mark lives outside the unwrap chain, which is exactly why
	// callers must go through errs.Is for marked sentinels.
	assert.False(t, errors.Is(marked, sentinel))
}

func TestIsFollowsPlainWrapChains(t *testing.T) {
	sentinel := errs.New("request not found")

	assert.True(t, errs.Is(sentinel, sentinel))
	assert.True(t, errs.Is(errs.Wrap(sentinel, "lookup failed"), sentinel))
	assert.True(t, errs.Is(fmt.Errorf("outer: %w", sentinel), sentinel))
	assert.False(t, errs.Is(errs.New("other"), sentinel))
	assert.False(t, errs.Is(nil, sentinel))
}

func TestMarkWithNilCauseReturnsSentinel(t *testing.T) {
	sentinel := errs.New("boom")
	assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
}
