// Package model defines the database models for the loan ledger.
//
// This package contains GORM models mapping to the PostgreSQL schema, plus
// the validated value objects (Username, LoanParams, LoanStatus) that form
// the single validation boundary for inbound data.
//
// # Core Models
//
//   - User: account holders
//   - Loan: fixed-rate loans with an owning user
//   - LoanAccess: read grants between users and loans
//
// # Database Schema
//
//   - users: account holders
//   - loans: loan records (amount, apr, term_months, status, owner_id)
//   - loan_access: (loan_id, user_id) grant rows
package model
