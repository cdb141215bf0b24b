// Package initializers provides implementations of aifh.Initializer, the
// collaborators that Reset delegates to in order to overwrite a finalized
// Network's weight vector in place. Importing the package registers Xavier as
// the package-wide default.
package initializers

import (
	"math"

	"github.com/pkg/errors"

	bs "github.com/muhammad-abbady/aifh"
)

// default values, because 'default' is a keyword
var defaultValue map[string]float64

func init() {
	bs.SetDefaultInitializer(Xavier())
	defaultValue = map[string]float64{
		"range-lower": -1,
		"range-upper": 1,
		"gauss-mean":  0,
		"gauss-sd":    1,
		"trunc-sds":   2,
	}
}

// SetDefault overwrites one of the package's named default values, returning
// an error if the name does not exist or the value is NaN or infinite.
func SetDefault(name string, value float64) error {
	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}

// SetDefault_Lazy simply calls SetDefault, but panics instead of returning an
// error
func SetDefault_Lazy(name string, value float64) {
	if err := SetDefault(name, value); err != nil {
		panic(err)
	}
}
