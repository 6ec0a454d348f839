// Package invoiceno assigns sequential invoice numbers. Numbers are seeded
// from the caller's current invoice count so that a regenerated recurring
// invoice continues the same sequence as manually created ones.
package invoiceno

import "fmt"

const prefix = "INV-"

// Generate returns the invoice number for the next invoice given the number
// of invoices the user already has.
func Generate(count int) string {
	return fmt.Sprintf("%s%06d", prefix, count+1)
}
