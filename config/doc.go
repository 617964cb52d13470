// SPDX-License-Identifier: MIT

// Package config loads lvpi settings from TOML or YAML files, with
// environment overrides.
//
// Resolution order (later wins):
//
//	Default() → file (TOML or YAML, picked by extension) → LVPI_* environment
//
// Recognized keys:
//
//	precision_bits = 256          # width of sweep groups without precisions
//	seed           = 2895720909174927
//	log_level      = "warn"       # debug, info, warn, error
//
//	[[sweep.groups]]
//	methods    = ["mc", "trap"]
//	precisions = [64, 128, 256]
//	counts     = [10, 100, 1000]
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
//
// Environment:
//
//	LVPI_PRECISION_BITS, LVPI_SEED, LVPI_LOG_LEVEL
package config
