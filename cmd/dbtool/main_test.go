package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"jelajah/internal/config"
)

func TestRun_UnknownCommand(t *testing.T) {
	err := run("drop", config.Config{}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "drop"`)
	assert.Contains(t, err.Error(), "usage: dbtool")
}
