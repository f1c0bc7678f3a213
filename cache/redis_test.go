package cache

import (
	"context"
	"testing"
)

// When redis is unreachable, Init must leave Client nil so every helper
// degrades to a no-op instead of redialing a dead backend per request.
func TestInitUnreachableLeavesClientNil(t *testing.T) {
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")

	if err := Init(); err == nil {
		t.Fatal("expected an error for an unreachable redis")
	}
	if Client != nil {
		t.Fatal("Client must stay nil after a failed ping")
	}

	ctx := context.Background()

	if IsTokenDenied(ctx, "some-jti") {
		t.Error("denylist must fail open without redis")
	}
	if err := DenyToken(ctx, "some-jti", 0); err != nil {
		t.Errorf("DenyToken must be a no-op without redis: %v", err)
	}

	ok, err := ReserveIdempotencyKey(ctx, "key-1", 0)
	if err != nil || !ok {
		t.Errorf("ReserveIdempotencyKey = (%v, %v), want (true, nil)", ok, err)
	}

	if err := SetAccountToken(ctx, "verify", "uid", "tok", 0); err != nil {
		t.Errorf("SetAccountToken must be a no-op without redis: %v", err)
	}
	// Nothing stored means nothing to consume: verification links must not
	// validate against a cache that never held them.
	if ConsumeAccountToken(ctx, "verify", "uid", "tok") {
		t.Error("ConsumeAccountToken must fail without redis")
	}
}
