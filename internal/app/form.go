package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jwulff/bmi-go/internal/bmi"
	"github.com/jwulff/bmi-go/internal/domain"
)

// Form labels.
const (
	WeightPrompt = "Weight (kg): "
	HeightPrompt = "Height (cm): "

	ActionCalculate = "Calculate BMI"
	ActionHistory   = "View History"
	ActionTrend     = "Show Trends"

	HistoryTitle   = "BMI History"
	EmptyHistory   = "No history yet."
	InputErrorText = "Input Error"
	NoDataTitle    = "No Data"
)

// ChartViewer presents a rendered trend chart to the user.
type ChartViewer func(frame *domain.Frame) error

// Form is the text front end: two fields, three actions and the result,
// category and history/chart regions, read from in and written to out.
type Form struct {
	app    *App
	in     *bufio.Scanner
	out    io.Writer
	viewer ChartViewer
}

// NewForm creates a form bound to app.
func NewForm(app *App, in io.Reader, out io.Writer, viewer ChartViewer) *Form {
	return &Form{
		app:    app,
		in:     bufio.NewScanner(in),
		out:    out,
		viewer: viewer,
	}
}

// Run shows the menu and dispatches actions until the user quits or input
// ends. Input errors are reported and the loop continues; other errors stop it.
func (f *Form) Run(ctx context.Context) error {
	f.printMenu()

	for {
		action, ok := f.ask("> ")
		if !ok {
			return nil
		}

		var err error
		switch strings.ToLower(action) {
		case "":
			continue
		case "c", "calc", "calculate":
			weight, ok := f.ask(WeightPrompt)
			if !ok {
				return nil
			}
			height, ok := f.ask(HeightPrompt)
			if !ok {
				return nil
			}
			err = f.Submit(ctx, weight, height)
		case "h", "history":
			err = f.ShowHistory(ctx)
		case "t", "trend", "trends":
			err = f.ShowTrend(ctx)
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Fprintf(f.out, "Unknown action %q\n", action)
			f.printMenu()
		}

		if err != nil && !bmi.IsInputError(err) {
			return err
		}
	}
}

// Submit runs the calculate action and prints the BMI and category.
func (f *Form) Submit(ctx context.Context, weightText, heightText string) error {
	result, err := f.app.Calculate(ctx, weightText, heightText)
	if bmi.IsInputError(err) {
		fmt.Fprintf(f.out, "%s: %s\n", InputErrorText, bmi.UserMessage)
		return err
	}
	if result.Category != "" {
		fmt.Fprintf(f.out, "BMI: %.2f\n", result.BMI)
		fmt.Fprintf(f.out, "Category: %s\n", result.Category)
	}
	return err
}

// ShowHistory prints every stored measurement.
func (f *Form) ShowHistory(ctx context.Context) error {
	lines, err := f.app.History(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(f.out, HistoryTitle)
	if len(lines) == 0 {
		fmt.Fprintln(f.out, EmptyHistory)
		return nil
	}
	for _, line := range lines {
		fmt.Fprintln(f.out, line)
	}
	return nil
}

// ShowTrend renders the trend chart and hands it to the viewer.
func (f *Form) ShowTrend(ctx context.Context) error {
	frame, err := f.app.Trend(ctx)
	if errors.Is(err, ErrNoData) {
		fmt.Fprintf(f.out, "%s: %s\n", NoDataTitle, NoDataMessage)
		return nil
	}
	if err != nil {
		return err
	}
	return f.viewer(frame)
}

func (f *Form) printMenu() {
	fmt.Fprintln(f.out, "Actions:")
	fmt.Fprintf(f.out, "  [c] %s\n", ActionCalculate)
	fmt.Fprintf(f.out, "  [h] %s\n", ActionHistory)
	fmt.Fprintf(f.out, "  [t] %s\n", ActionTrend)
	fmt.Fprintln(f.out, "  [q] Quit")
}

// ask prints prompt and reads one trimmed line. ok is false at end of input.
func (f *Form) ask(prompt string) (string, bool) {
	fmt.Fprint(f.out, prompt)
	if !f.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(f.in.Text()), true
}
