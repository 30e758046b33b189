package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change generator defaults, checks, the wordlist location
and the breach lookup client.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting by its dotted key.

Durations accept Go duration syntax (10s, 1h30m). Lists are comma
separated. Run 'pwforge settings keys' to list every key.`,
	Example: `  pwforge settings set generator.min_length 16
  pwforge settings set checks.breach false
  pwforge settings set breach.cache_ttl 12h`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settable keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", ErrNotConfigured)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Generator]")
	cmd.Printf("  Length range: %d-%d\n", settings.Generator.MinLength, settings.Generator.MaxLength)
	cmd.Printf("  Passphrase words: %d\n", settings.Generator.WordCount)
	cmd.Printf("  Delimiter: %q\n", settings.Generator.Delimiter)
	cmd.Println()

	cmd.Println("[Checks]")
	cmd.Printf("  Common patterns: %s\n", onOff(settings.Checks.Patterns))
	cmd.Printf("  Repetition: %s (threshold %d)\n", onOff(settings.Checks.Repetition), settings.Checks.RepetitionThreshold)
	cmd.Printf("  Breach lookup: %s\n", onOff(settings.Checks.Breach))
	if len(settings.Checks.CommonPatterns) > 0 {
		cmd.Printf("  Custom patterns: %s\n", strings.Join(settings.Checks.CommonPatterns, ", "))
	}
	cmd.Println()

	cmd.Println("[Wordlist]")
	cmd.Printf("  Path: %s\n", settings.Wordlist.Path)
	cmd.Println()

	cmd.Println("[Breach]")
	cmd.Printf("  API URL: %s\n", settings.Breach.APIURL)
	cmd.Printf("  Timeout: %s\n", settings.Breach.Timeout)
	cmd.Printf("  Cache TTL: %s\n", settings.Breach.CacheTTL)
	cmd.Printf("  Rate: %g requests/s\n", settings.Breach.RequestsPerSecond)
	cmd.Println()

	cmd.Printf("Stored in: %s\n", settingsService.Path())
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'pwforge settings set <key> <value>' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", ErrNotConfigured)
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", ErrNotConfigured)
	}
	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
