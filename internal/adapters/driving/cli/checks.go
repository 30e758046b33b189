package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
)

// checkFlags disable individual checks for one invocation.
type checkFlags struct {
	noPattern    bool
	noRepetition bool
	noBreach     bool
}

func (f *checkFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.noPattern, "no-pattern-check", false, "disable the common-pattern check")
	fs.BoolVar(&f.noRepetition, "no-repetition-check", false, "disable the repeated-character check")
	fs.BoolVar(&f.noBreach, "no-hibp-check", false, "disable the online breach check")
}

// apply turns off the checks disabled on the command line.
func (f *checkFlags) apply(s domain.CheckSettings) domain.CheckSettings {
	if f.noPattern {
		s.Patterns = false
	}
	if f.noRepetition {
		s.Repetition = false
	}
	if f.noBreach {
		s.Breach = false
	}
	return s
}

// buildValidator returns the generation-time checker for the given toggles.
func buildValidator(checks domain.CheckSettings) (driven.Checker, error) {
	if validatorFactory == nil {
		return nil, nil
	}
	return validatorFactory(checks)
}

// evaluate reports on each result.
func evaluate(cmd *cobra.Command, label string, results []domain.Result, opts domain.ReportOptions) []evaluation {
	evaluations := make([]evaluation, 0, len(results))
	for i, r := range results {
		e := evaluation{
			Label:  label + " " + strconv.Itoa(i+1),
			Result: r,
		}
		if reportService != nil {
			e.Report = reportService.Report(cmd.Context(), r.Value, opts)
		}
		evaluations = append(evaluations, e)
	}
	return evaluations
}
