// Package models defines the core domain models for the expense tracker.
//
// # Models
//
//   - User: a registered account, identified by a unique username
//   - Category: one of the fixed spending categories
//   - Expense: a single recorded expense owned by a user
//   - CategoryTotal: one row of the per-category spending report
//
// # Design Principles
//
//  1. **Append-only ledger**: expenses are created, never updated or deleted
//  2. **Read-only catalog**: categories are seeded once and never mutated
//  3. **Avoid circular references**: models reference each other by ID, not
//     by pointer
package models
