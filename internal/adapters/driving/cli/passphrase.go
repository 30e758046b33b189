package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pwforge/internal/core/domain"
)

var (
	ppWords      int
	ppDelimiter  string
	ppCapitalize bool
	ppAddNumber  bool
	ppAddSymbol  bool
	ppCount      int
	ppCopy       bool
	ppJSON       bool
	ppChecks     checkFlags
)

var passphraseCmd = &cobra.Command{
	Use:     "passphrase",
	Aliases: []string{"phrase"},
	Short:   "Generate Diceware passphrases",
	Long: `Generate passphrases from randomly chosen words of the Diceware
wordlist, joined by a delimiter.

An extra digit or symbol can be added as its own token; the tokens are
then shuffled so the extra token may land anywhere.`,
	Example: `  pwforge passphrase
  pwforge passphrase -w 8 --delimiter " "
  pwforge passphrase --capitalize --add-number --add-symbol`,
	Args: cobra.NoArgs,
	RunE: runPassphrase,
}

func init() {
	f := passphraseCmd.Flags()
	f.IntVarP(&ppWords, "words", "w", 0, "number of words (default from settings)")
	f.StringVar(&ppDelimiter, "delimiter", "", "delimiter between words (default from settings)")
	f.BoolVar(&ppCapitalize, "capitalize", false, "capitalise the first letter of each word")
	f.BoolVar(&ppAddNumber, "add-number", false, "add a random digit")
	f.BoolVar(&ppAddSymbol, "add-symbol", false, "add a random symbol")
	f.IntVarP(&ppCount, "count", "n", 1, "number of passphrases to generate")
	f.BoolVarP(&ppCopy, "copy", "c", false, "copy the last passphrase to the clipboard")
	f.BoolVar(&ppJSON, "json", false, "output results as JSON")
	ppChecks.register(f)
	rootCmd.AddCommand(passphraseCmd)
}

func runPassphrase(cmd *cobra.Command, _ []string) error {
	if passphraseService == nil {
		return fmt.Errorf("passphrase generator: %w", ErrNotConfigured)
	}
	if ppCount <= 0 {
		return domain.ErrInvalidCount
	}

	settings := loadSettings()
	checks := ppChecks.apply(settings.Checks)

	cfg := domain.PassphraseConfig{
		WordCount:    settings.Generator.WordCount,
		Delimiter:    settings.Generator.Delimiter,
		Capitalize:   ppCapitalize,
		AppendDigit:  ppAddNumber,
		AppendSymbol: ppAddSymbol,
	}
	if cmd.Flags().Changed("words") {
		cfg.WordCount = ppWords
	}
	// An explicit empty delimiter is allowed.
	if cmd.Flags().Changed("delimiter") {
		cfg.Delimiter = ppDelimiter
	}

	validator, err := buildValidator(checks)
	if err != nil {
		return fmt.Errorf("building checks: %w", err)
	}

	results := make([]domain.Result, 0, ppCount)
	for range ppCount {
		result, err := passphraseService.GeneratePassphrase(cfg, validator)
		if err != nil {
			if settings.Wordlist.Path != "" && errors.Is(err, domain.ErrNoWordlist) {
				return fmt.Errorf("%w (looked in %s; download the EFF large wordlist from "+
					"https://www.eff.org/files/2016/07/18/eff_large_wordlist.txt)", err, settings.Wordlist.Path)
			}
			return err
		}
		results = append(results, result)
	}

	// The ambiguous-character note only applies to random passwords.
	evaluations := evaluate(cmd, "Passphrase", results, checks.ReportOptions(true))
	if ppJSON {
		if err := outputJSON(cmd, evaluations); err != nil {
			return err
		}
	} else {
		outputText(cmd, evaluations)
	}

	if ppCopy {
		copyLast(cmd, evaluations)
	}
	return nil
}
