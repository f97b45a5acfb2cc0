package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "habitsctl", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	paths := [][]string{
		{"user", "add"},
		{"habit", "list"},
		{"habit", "add"},
		{"habit", "toggle"},
		{"habit", "delete"},
		{"report"},
	}

	for _, path := range paths {
		t.Run(path[len(path)-1], func(t *testing.T) {
			sub, _, err := cmd.Find(path)
			require.NoError(t, err)
			assert.Equal(t, path[len(path)-1], sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	data := cmd.PersistentFlags().Lookup("data")
	require.NotNil(t, data)
	assert.Equal(t, "habits.json", data.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	tz := cmd.PersistentFlags().Lookup("tz")
	require.NotNil(t, tz)
	assert.Equal(t, "Local", tz.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, t.TempDir()+"/habits.json", "--format", "xml", "report", "--user", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestInvalidTimezone(t *testing.T) {
	_, err := run(t, t.TempDir()+"/habits.json", "--tz", "Mars/Olympus", "report", "--user", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timezone")
}
