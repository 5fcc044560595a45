package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_ParsesValidLevel(t *testing.T) {
	log := New("debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNew_FallsBackToInfoOnInvalidLevel(t *testing.T) {
	log := New("not-a-level")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestFor_SetsComponentField(t *testing.T) {
	log := New("info")
	entry := For(log, "server")
	assert.Equal(t, "server", entry.Data["component"])
}
