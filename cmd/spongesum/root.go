// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package main

import (
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "SPONGESUM"

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "spongesum",
		Short:         "Sponge function hashing and random number tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v); err != nil {
				return err
			}
			if err := setLogLevel(v.GetString("log-level")); err != nil {
				return err
			}
			log.WithField("engine", v.GetString("engine")).Debug("configured")

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.spongesum.yaml)")
	flags.String("engine", defaultEngine, "sponge engine: "+strings.Join(engineNames, ", "))
	flags.String("log-level", "", "log level (panic, fatal, error, warn, info, debug, trace)")
	_ = v.BindPFlags(flags)

	cmd.AddCommand(
		newHashCmd(v),
		newRandCmd(v),
		newStatCmd(v),
		newImplsCmd(),
	)

	return cmd
}

func initConfig(v *viper.Viper) error {
	// Environment variable support, SPONGESUM_ENGINE etc.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", cfgFile)
		}
		log.WithField("file", v.ConfigFileUsed()).Debug("using config file")
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		log.WithError(err).Debug("no home directory, skipping config file")
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigName(".spongesum")
	v.SetConfigType("yaml")

	// The default config file is optional.
	if err := v.ReadInConfig(); err == nil {
		log.WithField("file", v.ConfigFileUsed()).Debug("using config file")
	}

	return nil
}
