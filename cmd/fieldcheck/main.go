package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck"
	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/predicate"
	"github.com/dmitrymomot/fieldcheck/pkg/report"
)

const (
	exitOK         = 0
	exitViolations = 1
	exitUsage      = 2
)

type cliConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"`
	Format      string `env:"FIELDCHECK_FORMAT" envDefault:"text"`
	Description string `env:"FIELDCHECK_DESCRIPTION" envDefault:"order is invalid: "`
	Currency    string `env:"FIELDCHECK_CURRENCY" envDefault:"EUR"`
}

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

func (c *cliConfig) Validate() error {
	return fieldcheck.Of(c).
		StringNotEmpty("APP_ENV", func(c *cliConfig) string { return c.Env }).
		Validate("FIELDCHECK_FORMAT", "must be one of text, json, yaml", func(c *cliConfig) bool {
			_, err := report.ParseFormat(c.Format)
			return err == nil
		}).
		Validate("FIELDCHECK_CURRENCY", "must be an ISO 4217 code", func(c *cliConfig) bool {
			return predicate.Matches(currencyPattern)(c.Currency)
		}).
		Err()
}

// errRejected marks a run that found violations.
var errRejected = errors.New("order rejected")

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the root command and maps its outcome to an exit code.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errRejected):
		return exitViolations
	default:
		fmt.Fprintf(stderr, "fieldcheck: %v\n", err)
		return exitUsage
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "fieldcheck [file]",
		Short: "Validate an order document",
		Long: `fieldcheck reads a YAML or JSON order document from file, or from stdin
when no file is given, and reports every rule the order breaks.

Exit status is 0 for a valid order, 1 when violations were found and 2 for
usage, input or configuration errors.

Settings come from the environment (a .env file is honoured):
  APP_ENV                 development, staging or production
  LOG_LEVEL               debug, info, warn or error
  FIELDCHECK_FORMAT       text, json or yaml
  FIELDCHECK_DESCRIPTION  header line of the text report
  FIELDCHECK_CURRENCY     currency every order must use`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg cliConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if formatFlag != "" {
				cfg.Format = formatFlag
			}
			format, err := report.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			source, in := "stdin", cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				source, in = args[0], f
			}

			log := logger.New(
				logger.WithEnvironment(cfg.Env, "fieldcheck"),
				logger.WithLevelName(cfg.LogLevel),
				logger.WithOutput(cmd.ErrOrStderr()),
			).With(logger.Source(source))

			ctx := logger.WithSession(cmd.Context(), uuid.NewString())
			return check(ctx, log, cfg, format, in, cmd.OutOrStdout())
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "report format: text, json or yaml (overrides FIELDCHECK_FORMAT)")
	return cmd
}

// check validates one document and writes its report to out.
func check(ctx context.Context, log *slog.Logger, cfg cliConfig, format report.Format, in io.Reader, out io.Writer) error {
	order, err := decodeOrder(in)
	if err != nil {
		log.ErrorContext(ctx, "failed to decode order", logger.Error(err))
		return err
	}

	start := time.Now()
	v := validateOrder(order, cfg.Description, cfg.Currency)
	violations := v.Violations()

	log.DebugContext(ctx, "order checked",
		logger.Duration(time.Since(start)),
		logger.ViolationCount(violations),
	)

	if !v.HasViolations() {
		log.InfoContext(ctx, "order is valid")
		if format == report.FormatText {
			return nil
		}
		return report.Render(out, violations, format)
	}

	log.WarnContext(ctx, "order rejected", logger.Violations(violations))
	if err := report.Render(out, violations, format, report.WithHeader(strings.TrimSpace(cfg.Description))); err != nil {
		return err
	}
	return errRejected
}

// decodeOrder reads a YAML or JSON document. An empty input yields an empty order.
func decodeOrder(r io.Reader) (*Order, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	order := &Order{}
	if err := dec.Decode(order); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return order, nil
}
