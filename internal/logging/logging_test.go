package logging

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_NoFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	closer, err := Init("")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func TestInit_WritesToRotatingFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "logs", "server.log")
	closer, err := Init(path)
	require.NoError(t, err)

	log.Println("proxy ready")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "proxy ready")
}
