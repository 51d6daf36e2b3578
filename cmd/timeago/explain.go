package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/goliatone/go-timeago"
	"github.com/spf13/cobra"
)

func newExplain(flags *globalFlags) *cobra.Command {
	opts := &explainOptions{}

	c := &cobra.Command{
		Use:   "explain TIMESTAMP",
		Short: "Show how a timestamp is bucketed and which grammatical form is used",

		Args: cobra.ExactArgs(1),
	}

	return build(c, flags, opts, timeago.WithHooks(timeago.HookFuncs{
		After: func(ctx *timeago.HookContext) { opts.last = ctx },
	}))
}

type explainOptions struct {
	timestamp string

	last *timeago.HookContext
}

func (o *explainOptions) Complete(c *cobra.Command, args []string) error {
	o.timestamp = args[0]
	return nil
}

func (o *explainOptions) Run(ctx *appContext) error {
	text, err := ctx.Formatter.TransString(o.timestamp)
	if err != nil {
		return err
	}
	if o.last == nil {
		return fmt.Errorf("no trace recorded for %q", o.timestamp)
	}

	key := color.New(color.Bold)
	row := func(name string, value any) {
		fmt.Fprintf(ctx.Out, "%s %v\n", key.Sprintf("%-10s", name+":"), value)
	}

	forms := ctx.Formatter.TimeTranslations()
	row("locale", o.last.Locale)
	row("elapsed", humanize.Comma(o.last.Elapsed)+"s")
	row("unit", o.last.Unit)
	row("count", o.last.Count)
	row("digit", timeago.LastDigit(o.last.Count))
	row("category", o.last.Category)
	row("phrase", forms.Phrase(o.last.Unit, o.last.Category))
	row("result", color.GreenString(text))

	return nil
}
