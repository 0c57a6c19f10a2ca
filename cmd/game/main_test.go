package main

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/ziggurat/internal/infrastructure/config"
)

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, err := loadConfig(configFS)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultDisplay(), cfg.Display)
	assert.Equal(t, config.DefaultWorld(), cfg.World)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := loadConfig(fstest.MapFS{})
	assert.Error(t, err)
}
