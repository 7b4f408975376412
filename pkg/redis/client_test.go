package redis

import (
	"testing"
	"time"

	"github.com/farmshop-si/farmshop-backend/pkg/config"
)

func TestKeyBuilders(t *testing.T) {
	c := &Client{}

	if got := c.FeatureFlagsKey(); got != "fs:feature_flags:state" {
		t.Fatalf("unexpected flags key %q", got)
	}
	if got := c.RateLimitKey("login:ip:1.2.3.4"); got != "fs:rate_limit:login:ip:1.2.3.4" {
		t.Fatalf("unexpected rate limit key %q", got)
	}
	if got := c.AccessSessionKey("abc"); got != "fs:session:access:abc" {
		t.Fatalf("unexpected session key %q", got)
	}
}

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error when neither url nor address is set")
	}
}

func TestOptionsFromConfigAddressFallback(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{
		Address:      "localhost:6379",
		PoolSize:     7,
		MinIdleConns: 3,
		DialTimeout:  2 * time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" {
		t.Fatalf("unexpected addr %q", opts.Addr)
	}
	if opts.PoolSize != 7 || opts.MinIdleConns != 3 {
		t.Fatalf("pool settings not applied: %+v", opts)
	}
}
