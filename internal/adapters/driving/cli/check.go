package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/pwforge/internal/core/domain"
)

// ErrEmptyPassword is returned when check receives no password.
var ErrEmptyPassword = errors.New("no password given")

var (
	checkJSON   bool
	checkChecks checkFlags
)

var checkCmd = &cobra.Command{
	Use:   "check [password]",
	Short: "Evaluate an existing password",
	Long: `Estimate the strength of an existing password and check it against
public breach data.

When no password is given it is read from standard input, without echo
when standard input is a terminal. Passing a password as an argument may
leave it in your shell history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output the report as JSON")
	checkChecks.register(checkCmd.Flags())
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return fmt.Errorf("report: %w", ErrNotConfigured)
	}

	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		read, err := readSecret(cmd)
		if err != nil {
			return err
		}
		password = read
	}
	if password == "" {
		return ErrEmptyPassword
	}

	checks := checkChecks.apply(loadSettings().Checks)
	result := domain.Result{Value: password, CriteriaMet: true}
	e := evaluation{
		Label:  "Password",
		Result: result,
		Report: reportService.Report(cmd.Context(), password, checks.ReportOptions(false)),
	}

	if checkJSON {
		return outputJSON(cmd, []evaluation{e})
	}
	outputText(cmd, []evaluation{e})
	return nil
}

// readSecret reads one password from the command's input. Terminal input
// is read without echo.
func readSecret(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		cmd.PrintErr("Password: ")
		secret, err := term.ReadPassword(int(f.Fd()))
		cmd.PrintErrln()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(secret), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
