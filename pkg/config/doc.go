// Package config loads audit source configuration from environment
// variables into tagged structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file is loaded once per process (absence is fine),
// then env.Parse fills the struct from `env` tags. Unlike a long-lived
// service, an audit run loads each configuration exactly once at startup,
// so there is no caching layer here.
//
// # Usage
//
//	var pg pgtable.Config
//	if err := config.Load(&pg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
//	var bucket s3table.Config
//	config.MustLoad(&bucket)
//
// # Error Handling
//
// Sentinel errors match with errors.Is:
//
//   - ErrParsingConfig – env vars could not be parsed into the struct.
//   - ErrNilPointer – nil pointer passed to Load.
package config
