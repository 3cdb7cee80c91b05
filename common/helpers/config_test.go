package helpers

import (
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	content := []byte(`redis:
  address: redis.local:6379
  password: secret
  dbNum: 2
server:
  listen: ":8080"
  snapshotExpirySeconds: 3600
`)
	conf, err := ParseConfig(content)
	if err != nil {
		t.Fatalf("ParseConfig returned an error: %s", err)
	}
	if conf.Redis.Address != "redis.local:6379" || conf.Redis.Password != "secret" || conf.Redis.DBNum != 2 {
		t.Errorf("redis section wrong: %v", conf.Redis)
	}
	if conf.Server.ListenAddress != ":8080" {
		t.Errorf("listen address wrong, got %s", conf.Server.ListenAddress)
	}
	if conf.SnapshotExpiryDuration() != time.Hour {
		t.Errorf("expiry wrong, got %s", conf.SnapshotExpiryDuration())
	}
	if conf.Server.MaxPayloadBytes != defaultMaxPayloadBytes {
		t.Errorf("max payload should default, got %d", conf.Server.MaxPayloadBytes)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	conf, err := ParseConfig([]byte(`redis:
  address: localhost:6379
server:
  snapshotExpirySeconds: -5
`))
	if err != nil {
		t.Fatalf("ParseConfig returned an error: %s", err)
	}
	if conf.Server.ListenAddress != defaultListenAddress {
		t.Errorf("listen address should default, got %s", conf.Server.ListenAddress)
	}
	if conf.SnapshotExpiryDuration() != 0 {
		t.Errorf("negative expiry should be reset to 0, got %s", conf.SnapshotExpiryDuration())
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte("redis: [this is: not valid"))
	if err == nil {
		t.Error("expected an error for invalid yaml")
	}
}
