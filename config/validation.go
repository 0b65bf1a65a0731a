package config

import (
	"reflect"

	"github.com/ARM-software/golang-numerics/numerics/commonerrors"
)

// ValidateEmbedded validates every embedded structure which itself implements
// IConfiguration. It is intended to be called at the start of a structure's
// Validate so that nested configuration failures name the field they relate
// to.
func ValidateEmbedded(cfg IConfiguration) error {
	r := reflect.ValueOf(cfg).Elem()
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() != reflect.Struct {
			continue
		}
		validator, ok := f.Addr().Interface().(IConfiguration)
		if !ok {
			continue
		}
		err := validator.Validate()
		if err != nil {
			return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "embedded configuration `%v` failed validation", r.Type().Field(i).Name)
		}
	}
	return nil
}
