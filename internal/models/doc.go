// Package models defines the core domain models for splitledger.
//
// # Models
//
//   - Expense: one shared expense record (who paid, how much, who benefited)
//   - Member: an entry in the ordered roster of people in the group
//
// Participants are identified by name strings; there are no user accounts.
//
// # Design Principles
//
// 1. **Immutable records**: an Expense is never edited in place, only added or removed
// 2. **Derived data is not stored**: balances and transfers are recomputed from the
//    expense list on every request (see package calculator)
// 3. **Avoid circular references**: use name strings instead of pointers
package models
