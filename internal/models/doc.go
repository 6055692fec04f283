// Package models defines the core domain models for Vasooly.
//
// A Bill is an amount collected from a list of participants. Each participant
// owes an integer number of paise computed by the calculator package, and the
// bill tracks which participants have paid.
//
// # Design Principles
//
// 1. **Paise only**: every amount is an int64 count of paise, never a float
// 2. **Ordered participants**: participant order is the split order, so the
//    extra paise of an uneven split always land on the same people
// 3. **Avoid circular references**: Use ID strings instead of pointers for relationships
package models
