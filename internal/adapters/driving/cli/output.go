package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pwforge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pwforge/internal/core/domain"
)

// outputStyles renders terminal output. lipgloss drops colour when the
// writer is not a terminal.
var outputStyles = styles.DefaultStyles()

// evaluation is one value with its generation outcome and report.
type evaluation struct {
	Label  string
	Result domain.Result
	Report domain.Report
}

type breachJSON struct {
	Status string `json:"status"`
	Count  int    `json:"count,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type evaluationJSON struct {
	Value       string     `json:"value"`
	Attempts    int        `json:"attempts,omitempty"`
	CriteriaMet bool       `json:"criteria_met"`
	Entropy     float64    `json:"entropy"`
	CrackTime   string     `json:"crack_time"`
	Breach      breachJSON `json:"breach"`
	Advisories  []string   `json:"advisories"`
}

func toJSON(e evaluation) evaluationJSON {
	advisories := make([]string, 0, len(e.Report.Advisories))
	for _, a := range e.Report.Advisories {
		advisories = append(advisories, string(a))
	}
	return evaluationJSON{
		Value:       e.Result.Value,
		Attempts:    e.Result.Attempts,
		CriteriaMet: e.Result.CriteriaMet,
		Entropy:     e.Report.Strength.Entropy,
		CrackTime:   e.Report.Strength.CrackTime,
		Breach: breachJSON{
			Status: e.Report.Breach.Status.String(),
			Count:  e.Report.Breach.Count,
			Reason: e.Report.Breach.Reason,
		},
		Advisories: advisories,
	}
}

func outputJSON(cmd *cobra.Command, evaluations []evaluation) error {
	out := make([]evaluationJSON, 0, len(evaluations))
	for _, e := range evaluations {
		out = append(out, toJSON(e))
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputText(cmd *cobra.Command, evaluations []evaluation) {
	for _, e := range evaluations {
		printEvaluation(cmd, e)
	}
}

func printEvaluation(cmd *cobra.Command, e evaluation) {
	s := outputStyles
	strength := e.Report.Strength
	rating, ratingStyle := s.Rating(strength.Entropy)

	cmd.Println()
	cmd.Printf("%s %s\n", s.Title.Render(e.Label+":"), s.Secret.Render(e.Result.Value))
	cmd.Printf("  %s %.2f bits %s\n", s.Label.Render("Entropy:"), strength.Entropy, ratingStyle.Render("("+rating+")"))
	cmd.Printf("  %s %s\n", s.Label.Render("Estimated crack time:"), strength.CrackTime)
	cmd.Printf("  %s %s\n", s.Label.Render("Breach check:"), s.Breach(e.Report.Breach))

	if !e.Result.CriteriaMet && e.Result.Attempts > 0 {
		cmd.Printf("  %s\n", s.Warning.Render("Warning: "+e.Result.Err().Error()+"; consider regenerating"))
	}
	for _, a := range e.Report.Advisories {
		switch a {
		case domain.AdvisoryAmbiguous:
			cmd.Printf("  %s\n", s.Warning.Render("Note: "+string(a)))
			cmd.Printf("  %s\n", s.Warning.Render("Use --exclude-ambiguous to avoid them if typing manually."))
		case domain.AdvisoryBreached:
			// Already shown by the breach line.
		default:
			cmd.Printf("  %s\n", s.Error.Render("Warning: "+string(a)))
		}
	}
}

// copyLast copies the last value when requested. Failures are warnings.
func copyLast(cmd *cobra.Command, evaluations []evaluation) {
	if len(evaluations) == 0 {
		cmd.PrintErrln("No values generated to copy to clipboard.")
		return
	}
	if clipboardSvc == nil {
		cmd.PrintErrln("Warning: clipboard not available")
		return
	}
	if err := clipboardSvc.Copy(evaluations[len(evaluations)-1].Result.Value); err != nil {
		cmd.PrintErrf("Warning: %v\n", err)
		return
	}
	cmd.PrintErrln("Copied to clipboard.")
}
