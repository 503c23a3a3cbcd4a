package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("BUDGETEER_TEST_DIR", "/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "/var/lib/budgeteer.db", "/var/lib/budgeteer.db"},
		{"tilde prefix", "~/budgeteer.db", filepath.Join(home, "budgeteer.db")},
		{"bare tilde", "~", home},
		{"env var", "$BUDGETEER_TEST_DIR/budgeteer.db", "/data/budgeteer.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
