// Package config provides configuration management for the loanledger
// server.
//
// Configuration is loaded from /etc/loanledger/loanledger.yml (overridable
// with LOANLEDGER_CONFIG_PATH) and then from environment variables, which
// take precedence. Each attribute remembers whether it came from a default,
// the file, or the environment; `ledgerctl configuration show` reports
// that.
//
// # Key Configuration Options
//
//   - DATABASE_URL: Database connection
//   - PORT, BIND_ADDRESS: Server listen address
//   - LOANLEDGER_LOG_LEVEL: Logging verbosity
//   - LOANLEDGER_TOKEN_SECRET: Enables bearer-token identity resolution
package config
