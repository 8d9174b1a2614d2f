package marina

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		name         string
		content      string
		wantCapacity int
		wantDup      DuplicatePolicy
		wantStrict   bool
		wantCurrency string
	}{
		{
			name:         "empty file",
			content:      "",
			wantCapacity: DefaultCapacity,
			wantDup:      AllowDuplicates,
			wantCurrency: "USD",
		},
		{
			name:         "all fields",
			content:      "capacity: 10\nduplicates: reject\nstrict_kinds: true\ncurrency: EUR\n",
			wantCapacity: 10,
			wantDup:      RejectDuplicates,
			wantStrict:   true,
			wantCurrency: "EUR",
		},
		{
			name:         "unlimited",
			content:      "capacity: 0\n",
			wantCapacity: 0,
			wantDup:      AllowDuplicates,
			wantCurrency: "USD",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "marina.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))

			cfg, err := LoadConfig(path)
			require.NoError(t, err)
			opts, err := cfg.Options(nil)
			require.NoError(t, err)

			require.Equal(t, tc.wantCapacity, opts.Capacity)
			require.Equal(t, tc.wantDup, opts.Duplicates)
			require.Equal(t, tc.wantStrict, opts.StrictKinds)
			require.Equal(t, tc.wantCurrency, cfg.CurrencyCode())
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	opts, err := cfg.Options(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultCapacity, opts.Capacity)
}

func TestLoadConfig_Invalid(t *testing.T) {
	for _, content := range []string{
		"duplicates: sometimes\n",
		"capacity: -3\n",
		"capacity: [1, 2]\n",
	} {
		path := filepath.Join(t.TempDir(), "marina.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		_, err := LoadConfig(path)
		require.Error(t, err, content)
	}
}
