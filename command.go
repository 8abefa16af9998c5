package argparse

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Command returns a cobra command running the parser on its arguments,
// then calling run. Cobra does not parse flags itself: all arguments are
// handed to Parse, but the options are still declared on the command
// flag set for usage and shell completions (see Completions).
//
// When the help option is given, the help text is printed and run is
// not called. A nil run only parses.
func (p *Parser) Command(run func(p *Parser) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:                p.usage(),
		DisableFlagParsing: true,
		SilenceUsage:       true,
	}

	if help, err := p.reg.Help(); err == nil {
		cmd.Short = help.Description()
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().AddFlagSet(p.FlagSet())

	if p.opts.Output != nil {
		cmd.SetOut(p.opts.Output)
		cmd.SetErr(p.opts.Output)
	}

	cmd.Args = func(cmd *cobra.Command, args []string) error {
		return p.ParseErr(append([]string{cmd.Name()}, args...))
	}

	cmd.RunE = p.runE(run)

	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), p.HelpText())
	})

	cmd.SetHelpCommand(p.helpCommand(run))
	p.Completions(cmd)

	return cmd
}

// runE prints the help text if requested, or calls run.
func (p *Parser) runE(run func(p *Parser) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if p.helpRequested() {
			fmt.Fprint(cmd.OutOrStdout(), p.HelpText())

			return nil
		}

		if run == nil {
			return nil
		}

		return run(p)
	}
}

// helpCommand replaces the help subcommand that cobra adds to commands
// having subcommands (here, the completion one). Cobra resolves the first
// word not starting with a dash as a subcommand name, so the word "help"
// lands here instead of the positional option: it is put back in its place
// and the whole command line is parsed like the root command does.
func (p *Parser) helpCommand(run func(p *Parser) error) *cobra.Command {
	return &cobra.Command{
		Use:                "help",
		Hidden:             true,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		Args: func(cmd *cobra.Command, args []string) error {
			words := append([]string{cmd.Root().Name()}, withWord(args, cmd.Name())...)

			return p.ParseErr(words)
		},
		RunE: p.runE(run),
	}
}

// withWord inserts word before the first argument not starting with a dash,
// which is where cobra found it when it removed it from args.
func withWord(args []string, word string) []string {
	pos := len(args)

	for i, arg := range args {
		if arg == "" || arg[0] != '-' {
			pos = i

			break
		}
	}

	words := make([]string, 0, len(args)+1)
	words = append(words, args[:pos]...)
	words = append(words, word)

	return append(words, args[pos:]...)
}

// helpRequested is like Help, but false when there is no help option.
func (p *Parser) helpRequested() bool {
	help, err := p.reg.Help()
	if err != nil {
		return false
	}

	requested, _ := help.BoolValue()

	return requested
}
