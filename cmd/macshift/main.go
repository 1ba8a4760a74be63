package main

import (
	"errors"
	"fmt"
	"os"

	"macshift/internal/application/usecases"
	domainerrors "macshift/internal/domain/errors"
	"macshift/internal/infrastructure/adapters"
	"macshift/internal/infrastructure/config"
	"macshift/internal/infrastructure/container"
	"macshift/internal/infrastructure/ui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		// Domain errors are already rendered by the run; flag-level errors
		// from cobra are not.
		var domainErr *domainerrors.DomainError
		if !errors.As(err, &domainErr) {
			ui.NewPrinter(os.Stdout, os.Stderr, ui.ColorModeAuto).Errorf("%v", err)
			_ = cmd.Usage()
		}
		os.Exit(1)
	}
}

// rootOptions holds the parsed command-line flags.
type rootOptions struct {
	interfaceName string
	macAddress    string
	random        bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "macshift",
		Short: "Change or randomize the MAC address of a network interface",
		Long: `macshift changes or randomizes the MAC (hardware) address of a Linux
network interface by driving the system interface-configuration tool.

It requires root privileges and does not persist the change across reboots.`,
		Example: `  sudo macshift -i eth0 -m 00:11:22:33:44:55
  sudo macshift -i wlan0 -r`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.interfaceName, "interface", "i", "", "target network interface (e.g. eth0, wlan0)")
	cmd.Flags().StringVarP(&opts.macAddress, "mac", "m", "", "new MAC address to assign (format: XX:XX:XX:XX:XX:XX)")
	cmd.Flags().BoolVarP(&opts.random, "random", "r", false, "generate and assign a random MAC address")
	_ = cmd.MarkFlagRequired("interface")

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	fs := adapters.NewRealFileSystem()
	cfg, err := config.NewEnvironmentConfigLoader(fs).Load()
	if err != nil {
		ui.NewPrinter(os.Stdout, os.Stderr, ui.ColorModeAuto).Errorf("%s", errorMessage(err))
		return err
	}

	logger := newLogger(cfg.Log.Level)
	printer := ui.NewPrinter(os.Stdout, os.Stderr, cfg.Log.Color)
	appContainer := container.NewContainer(cfg, logger, printer)

	if !appContainer.GetPrivilegeChecker().IsPrivileged() {
		printer.Errorf("This tool must be run with sudo/root privileges.")
		return domainerrors.NewPrivilegeError("root privileges required")
	}

	if opts.macAddress == "" && !opts.random {
		printer.Errorf("Please specify a MAC address (-m) or use the random flag (-r).")
		_ = cmd.Usage()
		return domainerrors.NewValidationError("no target address specified", nil)
	}

	output, err := appContainer.GetChangeMACUseCase().Execute(cmd.Context(), usecases.ChangeMACInput{
		InterfaceName: opts.interfaceName,
		TargetMAC:     opts.macAddress,
		Random:        opts.random,
	})
	if err != nil {
		printer.Errorf("%s", errorMessage(err))
		return err
	}

	printer.Successf("Success! MAC address changed to: %s", output.FinalMAC)
	return nil
}

// newLogger builds the process logger. The console printer carries the
// user-facing output, so the logger defaults to warnings and above unless a
// level is configured explicitly.
func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logger.WithError(err).Warnf("Unknown log level %q, using warn", level)
		parsed = logrus.WarnLevel
	}
	logger.SetLevel(parsed)

	return logger
}

// errorMessage renders an error for the console, without the taxonomy tag.
func errorMessage(err error) string {
	var domainErr *domainerrors.DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Cause != nil {
			return fmt.Sprintf("%s: %v", domainErr.Message, domainErr.Cause)
		}
		return domainErr.Message
	}
	return err.Error()
}
