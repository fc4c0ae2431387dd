// SPDX-License-Identifier: MIT
// Package: colorgame/batch
//
// errors.go — sentinel errors for the batch driver.

package batch

import "errors"

var (
	// ErrUnknownFamily indicates a family name absent from Families.
	ErrUnknownFamily = errors.New("batch: unknown graph family")

	// ErrOrderOutOfRange indicates an order outside a family's [MinOrder, MaxOrder].
	ErrOrderOutOfRange = errors.New("batch: order out of range for family")

	// ErrMalformedResult indicates a result line that is not "<graph6> <k>".
	ErrMalformedResult = errors.New("batch: malformed result line")

	// ErrBadGraph indicates a corpus line that does not decode.
	ErrBadGraph = errors.New("batch: cannot decode graph")
)
