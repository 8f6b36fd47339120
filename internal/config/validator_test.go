package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	strsimerrors "github.com/standardbeagle/strsim/internal/errors"
)

func TestValidate_Default(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate_UnknownAlgorithm(t *testing.T) {
	cfg := Default()
	cfg.Matcher.Algorithm = "hamming"

	err := cfg.Validate()
	require.Error(t, err)

	var algErr *strsimerrors.AlgorithmError
	require.True(t, errors.As(err, &algErr))
	assert.Equal(t, "hamming", algErr.Name)
	assert.Equal(t, AlgorithmNames(), algErr.Supported)
}

func TestValidate_CollectsAll(t *testing.T) {
	cfg := Default()
	cfg.Version = 2
	cfg.Matcher.Threshold = 1.5
	cfg.Matcher.MaxResults = -1
	cfg.Normalize.StemMinLength = -2
	cfg.Cache.PhoneticCodes = -3

	err := cfg.Validate()
	require.Error(t, err)

	var multi *strsimerrors.MultiError
	require.True(t, errors.As(err, &multi))
	require.Len(t, multi.Errors, 5)

	fields := make([]string, 0, len(multi.Errors))
	for _, e := range multi.Errors {
		var cfgErr *strsimerrors.ConfigError
		require.True(t, errors.As(e, &cfgErr))
		fields = append(fields, cfgErr.Field)
	}
	assert.Equal(t, []string{
		"version",
		"matcher.threshold",
		"matcher.max_results",
		"normalize.stem_min_length",
		"cache.phonetic_codes",
	}, fields)
}

func TestValidate_ThresholdBounds(t *testing.T) {
	for _, threshold := range []float64{0, 0.5, 1} {
		cfg := Default()
		cfg.Matcher.Threshold = threshold
		assert.NoError(t, cfg.Validate(), "threshold %v", threshold)
	}

	cfg := Default()
	cfg.Matcher.Threshold = -0.1
	assert.Error(t, cfg.Validate())
}

func TestAlgorithmNames(t *testing.T) {
	assert.Equal(t, []string{"levenshtein", "jaro-winkler", "cosine", "jaccard", "soundex"}, AlgorithmNames())
}
