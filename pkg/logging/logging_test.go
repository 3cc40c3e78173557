package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigureAndWith(t *testing.T) {
	var buffer bytes.Buffer
	Configure(Config{Level: "debug", Output: &buffer})

	SetBase(zerolog.New(&buffer))
	logger := With("torii")
	logger.Info().Str("event", "submit").Msg("submitted")

	if !strings.Contains(buffer.String(), `"subsystem":"torii"`) {
		t.Fatalf("subsystem tag missing from log output: %s", buffer.String())
	}
	if !strings.Contains(buffer.String(), `"event":"submit"`) {
		t.Fatalf("event field missing from log output: %s", buffer.String())
	}
}
