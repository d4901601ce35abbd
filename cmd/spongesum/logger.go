// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stderr)

	// LOG overrides the default level, --log-level overrides both.
	if x, exists := os.LookupEnv("LOG"); exists {
		if level, err := logrus.ParseLevel(x); err == nil {
			log.SetLevel(level)
		}
	}
}

func setLogLevel(s string) error {
	if s == "" {
		return nil
	}

	level, err := logrus.ParseLevel(s)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(level)

	return nil
}
