package wheel

import "time"

// SpinMethod tags a SpinEvent with the operation that started the
// session.
type SpinMethod string

const (
	// SpinMethodSpin is a velocity spin started by Spin.
	SpinMethodSpin SpinMethod = "spin"

	// SpinMethodSpinTo is an eased spin started by SpinTo.
	SpinMethodSpinTo SpinMethod = "spinto"

	// SpinMethodSpinToItem is an eased spin started by SpinToItem.
	SpinMethodSpinToItem SpinMethod = "spintoitem"

	// SpinMethodInteract is a velocity spin produced by releasing a
	// drag.
	SpinMethodInteract SpinMethod = "interact"
)

// SpinEvent describes a spin session that just began. Only the fields
// relevant to the method are populated: Speed for velocity spins,
// TargetRotation/TargetIndex/Duration for eased spins.
type SpinEvent struct {
	Method         SpinMethod
	Speed          float64
	TargetRotation float64
	TargetIndex    int
	Duration       time.Duration
}

// RestEvent describes a spin session that completed naturally. It is
// never raised for sessions cancelled by Stop, a new spin, or a drag.
type RestEvent struct {
	Index    int
	Rotation float64
}

// IndexChangeEvent reports that the pointer crossed a slice boundary.
type IndexChangeEvent struct {
	Index int
}
