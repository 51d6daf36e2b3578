package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newCmd() *cobra.Command {
	var flags globalFlags
	var opts transOptions

	c := &cobra.Command{
		Use:   "timeago [TIMESTAMP...]",
		Short: "Print how long ago timestamps were, in any supported language",

		Args: cobra.ArbitraryArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags.register(c)
	c.Flags().BoolVarP(&opts.seconds, "seconds", "s", false, "treat arguments as elapsed seconds instead of timestamps")

	c.AddCommand(newLocales(&flags))
	c.AddCommand(newExplain(&flags))

	return build(c, &flags, &opts)
}

func main() {
	color.NoColor = false
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	c := newCmd()

	err := c.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
