// Package audit emits RFC5424 syslog lines for loan lifecycle and access
// events: creation, updates, sharing, and schedule/summary reads, including
// denied attempts.
//
// Events go to stdout by default. Setting AUDIT_DATABASE_URL additionally
// persists them to a messages table. LEDGER_AUDIT_ENABLED=false disables
// auditing entirely.
package audit
