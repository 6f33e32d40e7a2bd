// Package config loads, normalizes, and validates lshsim configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// LSHSIM_QUESTIONS. The Config type centralizes every knob a run needs: input
// locations, LSH parameters, engine parallelism, result history, metrics and
// logging.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors. LSH
// layout errors (a band count that does not divide the signature size) are
// reported here, before any document is read.
package config
