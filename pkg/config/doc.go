// Package config loads typed configuration from environment variables and
// optional .env files.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11. Every
// configuration type is parsed once and cached by its type name; later Load
// calls copy the cached value.
//
//	var cfg config.Timeguard
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	loc, err := cfg.Location()
//
// Load reads the default .env file the first time it runs. LoadEnv reads
// explicit files, with later files overriding earlier ones.
//
// Timeguard describes the variables understood by the timeguard command:
//
//	TIMEGUARD_SYSTEM_ZONE  zone of the "system" policy (default Local)
//	TIMEGUARD_LANG         message language (default en)
//	TIMEGUARD_LOG_LEVEL    debug, info, warn or error (default info)
//	TIMEGUARD_LOG_FORMAT   text or json (default text)
//
// ResetCache and ForceReloadConfig exist for tests that change the
// environment between loads.
//
// Errors are sentinels (ErrParsingConfig, ErrLoadingEnvFile,
// ErrConfigNotLoaded, ErrNilPointer, ErrInvalidSystemZone) joined with the
// underlying cause.
package config
