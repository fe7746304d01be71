package request

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestDispatchError_FromIOError(t *testing.T) {
	ioErr := errors.New("unexpected EOF")
	d := FromIOError(ioErr)

	if d.Error() != "unexpected EOF" {
		t.Errorf("message should carry over, got %q", d.Error())
	}
	if !errors.Is(d, ioErr) {
		t.Error("cause should remain reachable")
	}
	if d.Timeout() {
		t.Error("plain I/O fault should not be a timeout")
	}
}

func TestDispatchError_FromIOError_Idempotent(t *testing.T) {
	orig := NewTimeoutError(errors.New("deadline exceeded"))
	coerced := FromIOError(orig)
	if coerced != orig {
		t.Error("coercing a dispatch error should return it unchanged")
	}
	if !coerced.Timeout() {
		t.Error("timeout flag should survive coercion")
	}
}

func TestDispatchError_FromIOError_Wrapped(t *testing.T) {
	base := NewConnectionError(errors.New("refused"))
	wrapped := fmt.Errorf("during read: %w", base)
	if FromIOError(wrapped) != base {
		t.Error("coercion should unwrap to an existing dispatch error")
	}
}

func TestDispatchError_EmptyMessage(t *testing.T) {
	d := NewDispatchError("")
	if d.Error() != "" {
		t.Errorf("empty message must be returned as-is, got %q", d.Error())
	}
}

func TestIsDispatchError(t *testing.T) {
	if !IsDispatchError(NewDispatchError("x")) {
		t.Error("expected true for dispatch error")
	}
	if IsDispatchError(errors.New("x")) {
		t.Error("expected false for plain error")
	}
}

func TestRetryConfig_BackoffGrowsAndCaps(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:    5,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     300 * time.Millisecond,
		BackoffFactor:  2.0,
	}
	cfg.applyDefaults()

	first := cfg.backoffFor(1)
	second := cfg.backoffFor(2)
	if second <= first {
		t.Errorf("backoff should grow: %v then %v", first, second)
	}
	if capped := cfg.backoffFor(10); capped > cfg.MaxBackoff {
		t.Errorf("backoff should cap at %v, got %v", cfg.MaxBackoff, capped)
	}
}

func TestRetryConfig_DefaultRetriesDispatchOnly(t *testing.T) {
	cfg := DefaultRetryConfig()
	if !cfg.RetryIf(NewConnectionError(errors.New("refused"))) {
		t.Error("dispatch errors should be retried")
	}
	if cfg.RetryIf(errors.New("service fault")) {
		t.Error("non-dispatch errors should not be retried")
	}
}
