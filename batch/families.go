// SPDX-License-Identifier: MIT
// Package: colorgame/batch
//
// families.go — named graph corpora and their file layout.

package batch

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/samber/lo"
)

// separator is written between orders when a whole family is processed.
const separator = "###"

// Separator returns the line written between the orders of a family run.
func Separator() string { return separator }

// Family is a named corpus with one file per order.
type Family struct {
	Name     string
	MinOrder int
	MaxOrder int
}

// Families lists the known corpora.
var Families = map[string]Family{
	"planar":      {Name: "planar", MinOrder: 4, MaxOrder: 11},
	"outerplanar": {Name: "outerplanar", MinOrder: 4, MaxOrder: 11},
}

// FamilyNames returns the keys of Families in sorted order.
func FamilyNames() []string {
	names := lo.Keys(Families)
	slices.Sort(names)

	return names
}

// LookupFamily returns the family called name.
func LookupFamily(name string) (Family, error) {
	f, ok := Families[name]
	if !ok {
		return Family{}, fmt.Errorf("LookupFamily: %q (known: %v): %w", name, FamilyNames(), ErrUnknownFamily)
	}

	return f, nil
}

// Orders returns MinOrder..MaxOrder.
func (f Family) Orders() []int {
	return lo.RangeFrom(f.MinOrder, f.MaxOrder-f.MinOrder+1)
}

// File returns the corpus file for order n under dir.
//
// Errors: ErrOrderOutOfRange.
func (f Family) File(dir string, n int) (string, error) {
	if n < f.MinOrder || n > f.MaxOrder {
		return "", fmt.Errorf("%s: n=%d not in [%d,%d]: %w", f.Name, n, f.MinOrder, f.MaxOrder, ErrOrderOutOfRange)
	}

	return FamilyFile(dir, f.Name, n), nil
}

// FamilyFile returns <dir>/<family>/<family>-n<n>.dat.
func FamilyFile(dir, family string, n int) string {
	return filepath.Join(dir, family, fmt.Sprintf("%s-n%d.dat", family, n))
}
