package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pwforge/internal/core/domain"
)

// lengthBuffer is added to the minimums when they exceed the default length.
const lengthBuffer = 4

var (
	genLength           int
	genCount            int
	genNoLower          bool
	genNoUpper          bool
	genNoDigits         bool
	genNoSymbols        bool
	genExcludeAmbiguous bool
	genMinLower         int
	genMinUpper         int
	genMinDigits        int
	genMinSymbols       int
	genCopy             bool
	genJSON             bool
	genChecks           checkFlags
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate random passwords",
	Long: `Generate random passwords from lowercase letters, uppercase letters,
digits and symbols.

Without --length the length is picked at random between the configured
minimum and maximum. When minimum counts are requested the configured
minimum is used instead, raised to fit the minimums.

Candidates containing common patterns or long runs of one character are
rejected and regenerated. If every attempt is rejected the last candidate
is printed with a warning.`,
	Example: `  pwforge generate
  pwforge generate -l 20 -n 5
  pwforge generate --no-symbols --exclude-ambiguous
  pwforge generate --min-digits 2 --min-symbols 2 --copy`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.IntVarP(&genLength, "length", "l", 0, "password length (default: random within the configured range)")
	f.IntVarP(&genCount, "count", "n", 1, "number of passwords to generate")
	f.BoolVar(&genNoLower, "no-lower", false, "exclude lowercase letters (a-z)")
	f.BoolVar(&genNoUpper, "no-upper", false, "exclude uppercase letters (A-Z)")
	f.BoolVar(&genNoDigits, "no-digits", false, "exclude digits (0-9)")
	f.BoolVar(&genNoSymbols, "no-symbols", false, "exclude symbols")
	f.BoolVar(&genExcludeAmbiguous, "exclude-ambiguous", false, "exclude ambiguous characters (l, I, O, 0, 1)")
	f.IntVar(&genMinLower, "min-lower", 0, "minimum number of lowercase letters")
	f.IntVar(&genMinUpper, "min-upper", 0, "minimum number of uppercase letters")
	f.IntVar(&genMinDigits, "min-digits", 0, "minimum number of digits")
	f.IntVar(&genMinSymbols, "min-symbols", 0, "minimum number of symbols")
	f.BoolVarP(&genCopy, "copy", "c", false, "copy the last password to the clipboard")
	f.BoolVar(&genJSON, "json", false, "output results as JSON")
	genChecks.register(f)
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if passwordService == nil {
		return fmt.Errorf("password generator: %w", ErrNotConfigured)
	}
	if genCount <= 0 {
		return domain.ErrInvalidCount
	}

	settings := loadSettings()
	checks := genChecks.apply(settings.Checks)

	cfg := domain.GenerationConfig{
		UseLower:         !genNoLower,
		UseUpper:         !genNoUpper,
		UseDigits:        !genNoDigits,
		UseSymbols:       !genNoSymbols,
		ExcludeAmbiguous: genExcludeAmbiguous,
		MinLower:         genMinLower,
		MinUpper:         genMinUpper,
		MinDigits:        genMinDigits,
		MinSymbols:       genMinSymbols,
	}

	if cmd.Flags().Changed("length") {
		cfg.Length = genLength
	} else {
		length, err := defaultLength(settings.Generator, cfg.TotalMinimum())
		if err != nil {
			return err
		}
		cfg.Length = length
	}

	validator, err := buildValidator(checks)
	if err != nil {
		return fmt.Errorf("building checks: %w", err)
	}

	results := make([]domain.Result, 0, genCount)
	for range genCount {
		result, err := passwordService.GeneratePassword(cfg, validator)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	evaluations := evaluate(cmd, "Password", results, checks.ReportOptions(cfg.ExcludeAmbiguous))
	if genJSON {
		if err := outputJSON(cmd, evaluations); err != nil {
			return err
		}
	} else {
		outputText(cmd, evaluations)
	}

	if genCopy {
		copyLast(cmd, evaluations)
	}
	return nil
}

// defaultLength picks the length when none is given: uniform within the
// configured range without minimums, otherwise the configured minimum
// raised to fit the minimums.
func defaultLength(g domain.GeneratorSettings, totalMinimum int) (int, error) {
	if totalMinimum > 0 {
		if totalMinimum > g.MinLength {
			return totalMinimum + lengthBuffer, nil
		}
		return g.MinLength, nil
	}

	span := g.MaxLength - g.MinLength + 1
	if span <= 1 || randomSource == nil {
		return g.MinLength, nil
	}
	n, err := randomSource.Intn(span)
	if err != nil {
		return 0, fmt.Errorf("picking length: %w", err)
	}
	return g.MinLength + n, nil
}
