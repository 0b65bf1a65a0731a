package safecast

import "golang.org/x/exp/constraints"

// ISignedInteger is an alias for all signed integer types.
type ISignedInteger interface {
	constraints.Signed
}

// IUnsignedInteger is an alias for all unsigned integer types.
type IUnsignedInteger interface {
	constraints.Unsigned
}

// IInteger is an alias for all unsigned and signed integer types.
type IInteger interface {
	constraints.Integer
}

// IFloat is an alias for the floating point types.
type IFloat interface {
	constraints.Float
}

// INumber is an alias for all integer and floating point types.
type INumber interface {
	IInteger | IFloat
}

// IConvertable is an alias for everything that can be converted.
type IConvertable interface {
	INumber
}
