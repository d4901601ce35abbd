// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const stdinName = "-"

func newHashCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [FILE...]",
		Short: "Absorb each FILE (or stdin) and print the squeezed output as hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			length := v.GetInt("length")
			if length <= 0 {
				return errors.Errorf("invalid output length %d", length)
			}
			if len(args) == 0 {
				args = []string{stdinName}
			}

			for _, fn := range args {
				e, err := newEngine(v.GetString("engine"))
				if err != nil {
					return err
				}
				if err = absorbFile(e, fn, cmd.InOrStdin()); err != nil {
					return err
				}

				out := make([]byte, length)
				_, _ = e.Read(out)
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", hex.EncodeToString(out), fn)
			}

			return nil
		},
	}

	cmd.Flags().IntP("length", "n", 32, "number of output bytes")
	_ = v.BindPFlag("length", cmd.Flags().Lookup("length"))

	return cmd
}

func absorbFile(e engine, fn string, stdin io.Reader) error {
	r := stdin
	if fn != stdinName {
		f, err := os.Open(fn)
		if err != nil {
			return errors.Wrap(err, "failed to open input")
		}
		defer f.Close()
		r = f
	}

	n, err := io.Copy(e, r)
	if err != nil {
		return errors.Wrapf(err, "failed to absorb %s", fn)
	}
	log.WithFields(logrus.Fields{
		"file":  fn,
		"bytes": n,
	}).Debug("absorbed")

	return nil
}
