// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRandCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Print random numbers squeezed from a seeded sponge",
		RunE: func(cmd *cobra.Command, args []string) error {
			count := v.GetInt("count")
			if count < 0 {
				return errors.Errorf("invalid count %d", count)
			}

			e, err := newEngine(v.GetString("engine"))
			if err != nil {
				return err
			}
			if err = seedEngine(e, v.GetString("seed"), time.Now()); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				if v.GetBool("float") {
					fmt.Fprintf(w, "%f\n", uniformFloat(e))
				} else {
					fmt.Fprintf(w, "%d\n", uniformUint64(e))
				}
			}

			return nil
		},
	}

	cmd.Flags().String("seed", "", "seed string (default is the current time)")
	cmd.Flags().IntP("count", "c", 10, "number of values to print")
	cmd.Flags().Bool("float", false, "print floats uniform in [-1, 1] instead of integers")
	for _, name := range []string{"seed", "count", "float"} {
		_ = v.BindPFlag(name, cmd.Flags().Lookup(name))
	}

	return cmd
}

// seedEngine absorbs seed, or the unix time of now as a little endian
// int64 (a native time_t on common targets) if seed is empty.
func seedEngine(e io.Writer, seed string, now time.Time) error {
	var err error
	if seed != "" {
		_, err = io.WriteString(e, seed)
	} else {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(now.Unix()))
		_, err = e.Write(b[:])
	}

	return errors.Wrap(err, "failed to seed")
}

func uniformUint64(e io.Reader) uint64 {
	var b [8]byte
	_, _ = e.Read(b[:])

	return binary.LittleEndian.Uint64(b[:])
}

func uniformFloat(e io.Reader) float64 {
	return float64(uniformUint64(e))/float64(math.MaxUint64)*2.0 - 1.0
}
