package testlog

import (
	"testing"

	"github.com/saintserge/jodconverter/internal/logging"
)

func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	logging.Infof("test=%s", t.Name())
}
