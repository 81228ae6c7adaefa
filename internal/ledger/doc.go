// Package ledger keeps the table of outstanding debts between lenders and
// borrowers.
//
// A debt entry exists only while its amount is positive: the repayment that
// brings it to zero removes it, and a borrower whose last entry is removed
// no longer appears in the ledger at all. Every mutating operation either
// applies fully or leaves parties and table untouched.
package ledger
