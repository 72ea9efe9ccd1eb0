package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mergingtonactivities/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActivityRepository_Memory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo, closeStore, err := newActivityRepository(context.Background(), &config.Config{StoreDriver: config.StoreMemory}, logger)
	require.NoError(t, err)
	defer closeStore()

	acts, err := repo.List(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(acts))
	for _, a := range acts {
		names = append(names, a.Name)
	}
	assert.Contains(t, names, "Chess Club")
}
