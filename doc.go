// Package tracker implements a personal finance ledger: income and expense
// transactions organized into categories with optional spending limits,
// recurring transaction templates expanded lazily as calendar time advances,
// balance projection and spending reports over time windows, and wholesale
// snapshot persistence to named JSON save files.
//
// The Ledger type is the engine; the cmd package drives it from an
// interactive command-line session.
package tracker
