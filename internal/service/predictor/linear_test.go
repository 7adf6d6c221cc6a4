package predictor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinear_Predict(t *testing.T) {
	testCases := []struct {
		name      string
		coef      string
		intercept string
		input     string
		want      string
	}{
		{
			name:      "identity",
			coef:      "1",
			intercept: "0",
			input:     "2",
			want:      "2",
		},
		{
			name:      "half slope with intercept",
			coef:      "0.5",
			intercept: "0.1",
			input:     "2",
			want:      "1.1",
		},
		{
			name:      "negative input",
			coef:      "0.5",
			intercept: "0.1",
			input:     "-4",
			want:      "-1.9",
		},
		{
			name:      "baseline at zero is the intercept",
			coef:      "0.83",
			intercept: "0.02",
			input:     "0",
			want:      "0.02",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			model := NewLinear(mustDecimal(t, tc.coef), mustDecimal(t, tc.intercept))
			got := model.Predict(mustDecimal(t, tc.input))
			assert.True(t, got.Equal(mustDecimal(t, tc.want)), "got %s", got)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ols.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"coef": 0.83, "intercept": 0.02}`), 0o644))

	model, err := LoadFile(path)
	require.NoError(t, err)

	got := model.Predict(decimal.NewFromInt(2))
	assert.True(t, got.Equal(mustDecimal(t, "1.68")), "got %s", got)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
