package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jwulff/bmi-go/internal/app"
	"github.com/jwulff/bmi-go/internal/bmi"
	"github.com/jwulff/bmi-go/internal/config"
	"github.com/jwulff/bmi-go/internal/domain"
	"github.com/jwulff/bmi-go/internal/render"
	"github.com/jwulff/bmi-go/internal/storage/sqlite"
)

// FieldArguments names the calc arguments in an InputError raised while
// parsing the command line.
const FieldArguments = "arguments"

// cli owns the resources shared by every subcommand.
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	chartOut   string

	cfg    *config.Config
	logger *slog.Logger
	store  *sqlite.Store
	form   *app.Form
}

func newCLI(in io.Reader, out, errOut io.Writer) *cli {
	return &cli{in: in, out: out, errOut: errOut}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bmi",
		Short: "Calculate, record and chart Body Mass Index",
		Long: "Calculate BMI from weight (kg) and height (cm), keep every result in a local\n" +
			"history and chart it over time. Without a subcommand an interactive form starts.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.open,
		RunE:              c.runForm,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./bmi.yaml or ~/.config/bmi/bmi.yaml)")

	root.AddCommand(
		&cobra.Command{
			Use:   "form",
			Short: "Start the interactive form",
			Args:  cobra.NoArgs,
			RunE:  c.runForm,
		},
		c.calcCmd(),
		&cobra.Command{
			Use:   "history",
			Short: "List every recorded measurement",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.form.ShowHistory(cmd.Context())
			},
		},
		c.trendCmd(),
	)
	return root
}

func (c *cli) calcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calc <weight-kg> <height-cm>",
		Aliases: []string{"calculate"},
		Short:   "Calculate BMI and add it to the history",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.form.Submit(cmd.Context(), args[0], args[1])
		},
	}
	// A negative number such as -70 parses as a shorthand flag.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		fmt.Fprintf(c.out, "%s: %s\n", app.InputErrorText, bmi.UserMessage)
		return &bmi.InputError{
			Field: FieldArguments,
			Err:   errors.Wrap(bmi.ErrInvalidInput, err.Error()),
		}
	})
	return cmd
}

func (c *cli) trendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Chart BMI over time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.form.ShowTrend(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&c.chartOut, "out", "o", "", "PNG file to write (default from chart.output)")
	return cmd
}

// open loads config, sets up logging and opens the store before any command runs.
func (c *cli) open(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, _ := cfg.Log.SlogLevel()
	c.logger = slog.New(slog.NewTextHandler(c.errOut, &slog.HandlerOptions{Level: level}))

	store, err := sqlite.NewFileStore(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to open store %s: %w", cfg.DB.Path, err)
	}
	c.store = store
	c.logger.Debug("store opened", "path", cfg.DB.Path)

	a := app.New(store,
		app.WithLogger(c.logger),
		app.WithChartSize(cfg.Chart.Width, cfg.Chart.Height),
	)
	c.form = app.NewForm(a, c.in, c.out, c.showChart)
	return nil
}

// close releases the store. It is safe to call when open never ran.
func (c *cli) close() {
	if c.store == nil {
		return
	}
	if err := c.store.Close(); err != nil {
		c.logger.Warn("failed to close store", "error", err)
		return
	}
	c.store = nil
	c.logger.Debug("store closed")
}

func (c *cli) runForm(cmd *cobra.Command, _ []string) error {
	fmt.Fprintln(c.out, "BMI Calculator")
	fmt.Fprintln(c.out)
	return c.form.Run(cmd.Context())
}

// showChart writes the frame as a PNG and previews it in the terminal.
func (c *cli) showChart(frame *domain.Frame) error {
	path := c.chartOut
	if path == "" {
		path = c.cfg.Chart.Output
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	if err := render.WritePNG(f, frame); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write chart file: %w", err)
	}

	if err := render.PrintASCII(c.out, frame, c.isTerminal()); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Chart saved to %s\n", path)
	return nil
}

func (c *cli) isTerminal() bool {
	f, ok := c.out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
