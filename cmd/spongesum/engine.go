// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"gitlab.com/yawning/sponge.git"
	"gitlab.com/yawning/sponge.git/rule30"
)

const defaultEngine = "keccak"

var engineNames = []string{"keccak", "shake128", "shake256", "rule30"}

type engine interface {
	sponge.Sponge
	io.ReadWriter
}

type bitSqueezer interface {
	SqueezeBit() byte
}

func newEngine(name string) (engine, error) {
	var params sponge.Params

	switch strings.ToLower(name) {
	case "", "keccak":
		return sponge.NewDefault(), nil
	case "shake128":
		params = sponge.ParamsSHAKE128
	case "shake256":
		params = sponge.ParamsSHAKE256
	case "rule30":
		return rule30.NewDefault(), nil
	default:
		return nil, errors.Errorf("unknown engine %q (supported: %s)", name, strings.Join(engineNames, ", "))
	}

	s, err := sponge.New(params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to construct %s", name)
	}

	return s, nil
}

// newSizedEngine is newEngine, except that rule30 uses the provided cell
// and step counts.
func newSizedEngine(name string, cells, steps int) (engine, error) {
	if strings.ToLower(name) != "rule30" {
		return newEngine(name)
	}

	s, err := rule30.New(cells, steps)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to construct rule30 (%d cells, %d steps)", cells, steps)
	}

	return s, nil
}

// squeezeBits squeezes n bits, least significant bit of each byte first,
// calling fn with each one.
func squeezeBits(e engine, n int, fn func(bit byte)) {
	if bs, ok := e.(bitSqueezer); ok {
		for i := 0; i < n; i++ {
			fn(bs.SqueezeBit())
		}
		return
	}

	for n > 0 {
		b := e.SqueezeByte()
		for i := uint(0); i < 8 && n > 0; i++ {
			fn((b >> i) & 1)
			n--
		}
	}
}
