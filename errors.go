package aifh

import (
	"fmt"
)

// StructuralError documents misuse of the build -> finalize -> ready
// lifecycle: finalizing with no layers, mutating the structure after
// FinalizeStructure, using the network before it, or addressing the output
// layer in the weight API. There is no recovery path; the caller's code is
// wrong.
type StructuralError struct{ string }

func (err StructuralError) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrNotFinalized  = StructuralError{"Network has not been finalized"}
	ErrFinalized     = StructuralError{"Network has already been finalized"}
	ErrNoLayers      = StructuralError{"Network has no layers"}
	ErrNoInitializer = StructuralError{"No Initializer has been set or registered"}
)

// SizeMismatchError documents errors resulting from a provided slice not
// matching the size the Network expects, e.g. the input to Compute.
type SizeMismatchError struct {
	Expected, Got int
	Values        string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Number of given %s doesn't match (%d != %d)", err.Values, err.Got, err.Expected)
}

// IndexError documents a layer or neuron index outside its valid range. Limit
// is the number of valid indices, so Index must satisfy 0 <= Index < Limit.
type IndexError struct {
	Values       string
	Index, Limit int
}

func (err IndexError) Error() string {
	return fmt.Sprintf("Invalid %s index: %d (must be within [0, %d))", err.Values, err.Index, err.Limit)
}

// NilArgError documents errors resulting from certain arguments provided to a
// function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}
