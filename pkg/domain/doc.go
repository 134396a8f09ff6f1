/*
Package domain contains the core domain models of the diffusion estimator.

It defines the model constants of the correlation, the query and result
records exchanged with adapters, the error kinds and the lifecycle hooks.
This package is kept pure and free of I/O, following Hexagonal Architecture
principles.

# Key Entities

  - ModelConstants: The immutable parameter table of the correlation.
  - Query: A mole fraction and an absolute temperature.
  - Result: The estimated diffusivity, its logarithm and the relative error.
  - Breakdown: Intermediate quantities of one evaluation, for explanation views.
*/
package domain
