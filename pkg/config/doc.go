// Package config loads configuration structs from environment variables.
//
// Struct fields declare their sources with `env` tags; a .env file, when
// present, is loaded once per process before the first parse. Unlike a
// cached loader, every Load call re-reads the environment so independent
// scenarios (and tests using t.Setenv) observe their own values.
//
//	type DeskConfig struct {
//	    LoanPeriodDays int `env:"LOAN_PERIOD_DAYS" envDefault:"30"`
//	}
//
//	var cfg DeskConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// Use MustLoad for configuration the application cannot start without.
package config
