// Package config loads, normalizes, and validates samerename configuration.
//
// A configuration file is optional. Default returns the built-in policy (the
// align_image_stack binary, three --corr parameter sets, a 0.9 overlap
// threshold and the seq_ prefix), and Load overlays a TOML file on top of it
// when one is present at ~/.config/samerename/config.toml or at the path given
// with --config. Callers receive a fully expanded, validated Config and hand
// the relevant pieces to the pipeline packages as plain values.
package config
