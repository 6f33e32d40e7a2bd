// Package main hosts the lshsim CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration, applies flag overrides and
// hands off to the internal packages: pipeline runs, ad-hoc signatures, band
// layout tuning, run history and seed generation. Reports go to stdout as
// tables or JSON; logs and progress go to stderr.
package main
