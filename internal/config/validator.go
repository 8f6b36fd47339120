package config

import (
	"errors"
	"strconv"

	strsimerrors "github.com/standardbeagle/strsim/internal/errors"
	"github.com/standardbeagle/strsim/pkg/strsim"
)

// Validate checks every section and returns all problems at once
func (c *Config) Validate() error {
	var errs []error

	if c.Version != 1 {
		errs = append(errs, strsimerrors.NewConfigError("version", strconv.Itoa(c.Version),
			errors.New("only version 1 is supported")))
	}

	errs = append(errs, c.Matcher.validate()...)
	errs = append(errs, c.Normalize.validate()...)
	errs = append(errs, c.Cache.validate()...)

	return strsimerrors.NewMultiError(errs).ErrorOrNil()
}

func (m Matcher) validate() []error {
	var errs []error

	if !strsim.Algorithm(m.Algorithm).Valid() {
		errs = append(errs, strsimerrors.NewConfigError("matcher.algorithm", m.Algorithm,
			strsimerrors.NewAlgorithmError(m.Algorithm, AlgorithmNames())))
	}

	if m.Threshold < 0 || m.Threshold > 1 {
		errs = append(errs, strsimerrors.NewConfigError("matcher.threshold",
			strconv.FormatFloat(m.Threshold, 'g', -1, 64),
			errors.New("must be between 0 and 1")))
	}

	if m.MaxResults < 0 {
		errs = append(errs, strsimerrors.NewConfigError("matcher.max_results", strconv.Itoa(m.MaxResults),
			errors.New("must not be negative")))
	}

	return errs
}

func (n Normalize) validate() []error {
	if n.StemMinLength < 0 {
		return []error{strsimerrors.NewConfigError("normalize.stem_min_length", strconv.Itoa(n.StemMinLength),
			errors.New("must not be negative"))}
	}
	return nil
}

func (c Cache) validate() []error {
	if c.PhoneticCodes < 0 {
		return []error{strsimerrors.NewConfigError("cache.phonetic_codes", strconv.Itoa(c.PhoneticCodes),
			errors.New("must not be negative"))}
	}
	return nil
}

// AlgorithmNames lists the accepted matcher.algorithm values
func AlgorithmNames() []string {
	algos := strsim.Algorithms()
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = string(a)
	}
	return names
}
