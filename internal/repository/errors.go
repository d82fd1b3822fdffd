// Package repository provides database access for the lab's two tables.
// The safe repositories use parameter binding throughout; the one
// exception lives in unsafe_query.go and is documented there.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row. Handlers decide
// how (and whether) to translate it; the broken-access-control handler
// maps it to its fixed not-found page.
var ErrNotFound = errors.New("not found")
