package validation

import (
	"strings"
	"testing"
	"time"
)

type sampleConfig struct {
	Endpoint string        `mapstructure:"endpoint" validate:"required,url"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Mode     string        `mapstructure:"mode" validate:"omitempty,oneof=fast safe"`
}

func TestStruct_Valid(t *testing.T) {
	cfg := sampleConfig{Endpoint: "https://sqs.us-east-1.amazonaws.com", Timeout: time.Second}
	if err := Struct(&cfg); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStruct_MissingRequired(t *testing.T) {
	err := Struct(&sampleConfig{Timeout: time.Second})
	if err == nil {
		t.Fatal("expected error for missing endpoint")
	}
	if !strings.Contains(err.Error(), "endpoint is required") {
		t.Errorf("expected mapstructure field name in message, got %q", err.Error())
	}
}

func TestStruct_MultipleFailuresJoined(t *testing.T) {
	err := Struct(&sampleConfig{Mode: "reckless"})
	if err == nil {
		t.Fatal("expected errors")
	}
	msg := err.Error()
	for _, want := range []string{"endpoint", "timeout", "mode"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message should mention %q, got %q", want, msg)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Endpoint":   "endpoint",
		"MaxBackoff": "max_backoff",
		"TLS":        "t_l_s",
	}
	for in, want := range cases {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
