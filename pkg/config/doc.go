// Package config provides configuration management for kbkit.
//
// The configuration file is YAML, validated against a JSON schema generated
// from [Config], and holds defaults for locale listing and output.
package config
