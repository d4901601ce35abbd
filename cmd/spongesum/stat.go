// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/yawning/sponge.git/rule30"
)

// statCells is the rule30 ring size of the reference bit balance test,
// smaller than rule30.DefaultCells.
const statCells = 64

type bitStats struct {
	even, odd int
}

func (s *bitStats) ratio() float64 {
	if s.odd == 0 {
		return 0
	}
	return float64(s.even) / float64(s.odd)
}

func (s *bitStats) balanced(tolerance float64) bool {
	return s.odd > 0 && 1-s.ratio() <= tolerance
}

func newStatCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Check that squeezed bits are balanced between zero and one",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := v.GetInt("bits")
			if n <= 0 {
				return errors.Errorf("invalid bit count %d", n)
			}

			e, err := newSizedEngine(v.GetString("engine"), v.GetInt("cells"), v.GetInt("steps"))
			if err != nil {
				return err
			}
			if _, err = e.Write([]byte(v.GetString("stat-seed"))); err != nil {
				return errors.Wrap(err, "failed to seed")
			}
			if v.GetBool("time") {
				if err = seedEngine(e, "", time.Now()); err != nil {
					return err
				}
			}

			var st bitStats
			squeezeBits(e, n, func(bit byte) {
				if bit == 0 {
					st.even++
				} else {
					st.odd++
				}
			})

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Even: %d Odd: %d\n", st.even, st.odd)
			fmt.Fprintf(w, "Ratio: %f\n", st.ratio())

			tolerance := v.GetFloat64("tolerance")
			if !st.balanced(tolerance) {
				return errors.Errorf("bit balance %f outside tolerance %f", st.ratio(), tolerance)
			}

			return nil
		},
	}

	cmd.Flags().Int("bits", 5000, "number of bits to squeeze")
	cmd.Flags().Float64("tolerance", 0.05, "maximum allowed 1 - even/odd")
	cmd.Flags().String("seed", "Epic seed time", "seed string")
	cmd.Flags().Bool("time", true, "also absorb the current time")
	cmd.Flags().Int("cells", statCells, "rule30 cell count")
	cmd.Flags().Int("steps", rule30.DefaultSteps, "rule30 steps per bit")
	_ = v.BindPFlag("bits", cmd.Flags().Lookup("bits"))
	_ = v.BindPFlag("tolerance", cmd.Flags().Lookup("tolerance"))
	_ = v.BindPFlag("stat-seed", cmd.Flags().Lookup("seed"))
	_ = v.BindPFlag("time", cmd.Flags().Lookup("time"))
	_ = v.BindPFlag("cells", cmd.Flags().Lookup("cells"))
	_ = v.BindPFlag("steps", cmd.Flags().Lookup("steps"))

	return cmd
}
