package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	acts := Default()
	require.NotEmpty(t, acts)

	names := make(map[string]bool)
	for _, a := range acts {
		assert.False(t, names[a.Name], "duplicate activity %q", a.Name)
		names[a.Name] = true

		seen := make(map[string]bool)
		for _, p := range a.Participants {
			assert.False(t, seen[p], "duplicate participant %q in %q", p, a.Name)
			seen[p] = true
		}
		assert.Positive(t, a.MaxParticipants)
	}
	for _, want := range []string{"Chess Club", "Programming Class", "Tennis Club", "Debate Team"} {
		assert.True(t, names[want], "missing %q", want)
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	first := Default()
	first[0].Participants = append(first[0].Participants, "extra@mergington.edu")

	second := Default()
	assert.NotContains(t, second[0].Participants, "extra@mergington.edu")
}
