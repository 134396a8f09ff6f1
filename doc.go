/*
Package vignes estimates the mutual diffusion coefficient of a binary liquid mixture.

It evaluates a Vignes-type correlation corrected by a UNIQUAC/UNIFAC local-composition
model: given the mole fraction of component A and the absolute temperature, it returns
ln(D), D and the relative error against an experimental reference value.

# Concept

The model is a pure function of its two inputs and of nine constants (interaction
energies, size and surface parameters, infinite-dilution diffusivities and the
experimental reference). The constants are validated once and never change, so an
Estimator is safe for concurrent use without locking. Adapters (HTTP form, JSON API,
MCP tool, CLI) only parse input and render the Result or the error.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/vignes"
		"github.com/aretw0/vignes/pkg/domain"
	)

	func main() {
		est, err := vignes.New()
		if err != nil {
			log.Fatal(err)
		}

		res, err := est.Estimate(context.Background(), domain.Query{Xa: 0.5, T: 298.15})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("D = %.4e m²/s (%.3f%% from experiment)\n", res.D, res.RelativeErrorPercent)
	}

# Errors

Queries outside the model domain fail with a *domain.InputError, which matches
domain.ErrInvalidInput. The mole fraction must lie strictly between 0 and 1: the
correlation is singular at the pure-component limits. The temperature must be
strictly positive (Kelvin).
*/
package vignes
