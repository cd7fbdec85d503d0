package wheel

import "errors"

// Configuration and operation errors. Invalid input is rejected
// synchronously at the call site that introduced it; the engine never
// accepts a partially valid configuration.
var (
	// ErrInvalidWeight reports an item weight that is negative, NaN or
	// infinite. A zero weight means "unset" and defaults to 1.
	ErrInvalidWeight = errors.New("wheel: invalid item weight")

	// ErrInvalidSpeed reports a NaN or infinite spin speed.
	ErrInvalidSpeed = errors.New("wheel: invalid speed")

	// ErrInvalidRotation reports a NaN or infinite rotation value.
	ErrInvalidRotation = errors.New("wheel: invalid rotation")

	// ErrInvalidDuration reports a negative spin duration.
	ErrInvalidDuration = errors.New("wheel: invalid duration")

	// ErrInvalidDirection reports a spin direction other than 1 or -1.
	ErrInvalidDirection = errors.New("wheel: invalid direction")

	// ErrInvalidRevolutions reports a negative revolution count.
	ErrInvalidRevolutions = errors.New("wheel: invalid revolutions")

	// ErrInvalidResistance reports a resistance that is not a negative
	// finite number. Resistance must oppose the spin direction; a
	// positive value would accelerate the wheel forever.
	ErrInvalidResistance = errors.New("wheel: invalid resistance")

	// ErrInvalidMaxSpeed reports a max speed that is not a positive
	// finite number.
	ErrInvalidMaxSpeed = errors.New("wheel: invalid max speed")

	// ErrInvalidPointerAngle reports a NaN or infinite pointer angle.
	ErrInvalidPointerAngle = errors.New("wheel: invalid pointer angle")

	// ErrItemNotFound reports an item index outside the current item
	// list.
	ErrItemNotFound = errors.New("wheel: item not found")

	// ErrNoItems reports an operation that requires at least one item.
	ErrNoItems = errors.New("wheel: wheel has no items")
)
