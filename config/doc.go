// Package config loads the YAML run configuration of the acnet CLI.
//
// A minimal file:
//
//	inventory:
//	  count: 12
//	  seed: 7
//	  kinds: [r, c, l]
//	omega: 1000
//	sweep:
//	  enabled: true
//	  range: {min: 1, max: 100000}
//	  points: 200
//	  scale: log
//	output:
//	  xlsx: out.xlsx
//	  plot: bode.svg
//
// Unset fields take the Default* constants; Validate wraps ErrInvalid.
package config
