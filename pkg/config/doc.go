// Package config loads env-tagged configuration structs from the process
// environment, with optional .env file support for local development.
//
// Each package in this module that needs configuration declares its own
// Config struct with `env` tags (see honeypot.Config); this loader is the
// single place where the environment is read.
//
//	var cfg honeypot.Config
//	config.MustLoad(&cfg)
//	hp, err := honeypot.NewFromConfig(cfg)
package config
