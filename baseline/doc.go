// Package baseline persists snippet collections and comparison reports
// between scans.
//
// Re-checking a finding requires the snippet collection of the previous scan
// to still be available when the next scan finishes, typically on another
// machine or days later. A Store keeps each scan's collection under a stable
// scan id and archives the reports produced by comparing two of them.
//
// RedisStore is the production implementation, backed by go-redis. Tests can
// run it against miniredis without a real server.
package baseline
