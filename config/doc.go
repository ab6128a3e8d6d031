// Package config loads pgsgd.Params from a TOML parameter file: a typed
// staging struct decoded by BurntSushi/toml, then translated into the
// engine's own parameter type. CLI flags (cmd/pglayout) override whatever
// Load reads, following the same precedence that config file + flag
// combinations conventionally use.
package config
