package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type transOptions struct {
	seconds bool

	args []string
}

func (o *transOptions) Complete(c *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("at least one timestamp is required")
	}
	o.args = args
	return nil
}

func (o *transOptions) Run(ctx *appContext) error {
	phrase := color.New(color.FgGreen)

	for _, arg := range o.args {
		var (
			text string
			err  error
		)

		if o.seconds {
			elapsed, parseErr := strconv.ParseInt(arg, 10, 64)
			if parseErr != nil {
				return fmt.Errorf("parse seconds %q: %w", arg, parseErr)
			}
			text, err = ctx.Formatter.Format(elapsed)
		} else {
			text, err = ctx.Formatter.TransString(arg)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}

		fmt.Fprintln(ctx.Out, phrase.Sprint(text))
	}
	return nil
}
