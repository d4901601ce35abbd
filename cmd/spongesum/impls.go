// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/yawning/sponge.git"
)

func newImplsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "impls",
		Short: "List the permutation implementations, the one in use first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range sponge.Implementations() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
