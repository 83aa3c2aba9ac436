package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-paramedit/pkg/render"
	"github.com/goliatone/go-paramedit/pkg/renderers/html"
	"github.com/goliatone/go-paramedit/pkg/renderers/tui"
)

var (
	reviewLoop  bool
	outputPath  string
	assignments []string
)

// editCmd walks the parameters interactively and prints the model at the end.
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit parameter values interactively",
	RunE:  runEdit,
}

// showCmd prints the model, optionally after applying --set edits.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current model",
	RunE:  runShow,
}

// renderCmd writes the HTML form for the parameters.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the parameters as an HTML form",
	RunE:  runRender,
}

// applyCmd replays a URL-encoded form submission and prints the model.
var applyCmd = &cobra.Command{
	Use:   "apply [form-body]",
	Short: "Apply a posted HTML form (application/x-www-form-urlencoded) and print the model",
	Args:  cobra.ExactArgs(1),
	RunE:  runApply,
}

func init() {
	editCmd.Flags().BoolVar(&reviewLoop, "review", false, "offer another pass after editing all parameters")
	showCmd.Flags().StringArrayVar(&assignments, "set", nil, "apply an edit before printing (id=value, repeatable)")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (stdout if empty)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	ed, err := newSession(ctx)
	if err != nil {
		return err
	}

	r := tui.New(
		tui.WithOutputFormat(tui.OutputFormat(outputFormat)),
		tui.WithReviewLoop(reviewLoop),
		tui.WithLogger(logger),
	)
	opts, err := renderOptions()
	if err != nil {
		return err
	}
	out, err := r.Render(ctx, ed, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func runShow(cmd *cobra.Command, args []string) error {
	ed, err := newSession(commandContext(cmd))
	if err != nil {
		return err
	}
	for _, raw := range assignments {
		id, value, err := parseAssignment(raw)
		if err != nil {
			return err
		}
		ed.HandleEdit(id, value)
	}
	out, err := tui.EncodeModel(tui.OutputFormat(outputFormat), ed.Fields(), ed.GetModel())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	ed, err := newSession(ctx)
	if err != nil {
		return err
	}

	opts, err := renderOptions()
	if err != nil {
		return err
	}
	renderers := render.NewRegistry(html.New())
	out, err := renderers.Render(ctx, "html", ed, opts)
	if err != nil {
		return fmt.Errorf("failed to render form: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, out, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("form written", zap.String("path", outputPath))
		return nil
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func runApply(cmd *cobra.Command, args []string) error {
	ed, err := newSession(commandContext(cmd))
	if err != nil {
		return err
	}
	form, err := parseFormBody(args[0])
	if err != nil {
		return err
	}
	applied := html.ApplySubmission(ed, form, nil)
	logger.Debug("form applied", zap.Int("edits", applied))

	out, err := tui.EncodeModel(tui.OutputFormat(outputFormat), ed.Fields(), ed.GetModel())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func parseFormBody(raw string) (url.Values, error) {
	values, err := url.ParseQuery(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid form body: %w", err)
	}
	return values, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
