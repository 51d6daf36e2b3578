package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newLocales(flags *globalFlags) *cobra.Command {
	var opts localesOptions

	c := &cobra.Command{
		Use:   "locales",
		Short: "List supported locales, marking the active one",

		Args: cobra.NoArgs,
	}

	return build(c, flags, &opts)
}

type localesOptions struct{}

func (o *localesOptions) Complete(c *cobra.Command, args []string) error {
	return nil
}

func (o *localesOptions) Run(ctx *appContext) error {
	active := ctx.Formatter.Locale()
	mark := color.New(color.FgGreen, color.Bold)

	for _, code := range ctx.Formatter.SupportedLocales() {
		pack, err := ctx.Registry.Pack(code)
		if err != nil {
			return err
		}

		prefix := "  "
		if code == active {
			prefix = mark.Sprint("* ")
		}
		fmt.Fprintf(ctx.Out, "%s%-6s %s\n", prefix, code, pack.Name)
	}
	return nil
}
