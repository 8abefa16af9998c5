package argparse

import (
	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"
)

// Completions registers the completion actions declared with
// Option.Complete onto the command: the positional option action
// completes all positional words, and each option action completes
// the values of its flag.
func (p *Parser) Completions(cmd *cobra.Command) *carapace.Carapace {
	comps := carapace.Gen(cmd)
	flags := make(carapace.ActionMap)

	for _, opt := range p.reg.Options() {
		action, found := opt.Completion()
		if !found {
			continue
		}

		if opt.IsPositional() {
			comps.PositionalAnyCompletion(action)
		}

		flags[opt.Long()] = action
	}

	if len(flags) > 0 {
		comps.FlagCompletion(flags)
	}

	return comps
}
