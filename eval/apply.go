// SPDX-License-Identifier: MIT

package eval

import (
	"math"

	"github.com/katalvlaran/lvgp/program"
)

// NodeFunc computes one function node for one row. a is the first operand
// (the first value popped from the stack, i.e. the left child) and b the
// second; unary operators ignore b.
type NodeFunc func(op program.Op, a, b float64) float64

// Protection thresholds and sentinels for Apply.
const (
	// MinDenominator is the magnitude below which div, inv, log and rsqrt
	// treat their argument as zero.
	MinDenominator = 0.001

	divSentinel = 1.0
	zeroResult  = 0.0
)

var _ NodeFunc = Apply

// Apply is the default NodeFunc. It is total: it never returns NaN or ±Inf
// for finite inputs.
//
// Protected operators:
//   - div(a,b)  — 1 when |b| < MinDenominator.
//   - inv(a)    — 0 when |a| < MinDenominator.
//   - log(a)    — log|a|; 0 when |a| < MinDenominator.
//   - rsqrt(a)  — 1/sqrt|a|; 0 when |a| < MinDenominator.
//   - sqrt(a)   — sqrt|a|.
//   - acos, asin outside [-1,1], acosh below 1, atanh outside (-1,1) — 0.
//   - pow, exp, cosh, sinh, tan, cube, sq, mul and friends — 0 when the
//     result is not finite.
func Apply(op program.Op, a, b float64) float64 {
	return finiteOr(raw(op, a, b), zeroResult)
}

func raw(op program.Op, a, b float64) float64 {
	switch op {
	case program.OpAdd:
		return a + b
	case program.OpSub:
		return a - b
	case program.OpMul:
		return a * b
	case program.OpDiv:
		if math.Abs(b) < MinDenominator {
			return divSentinel
		}
		return a / b
	case program.OpPow:
		return math.Pow(a, b)
	case program.OpMax:
		return math.Max(a, b)
	case program.OpMin:
		return math.Min(a, b)
	case program.OpAtan2:
		return math.Atan2(a, b)
	case program.OpFdim:
		return math.Dim(a, b)

	case program.OpAbs:
		return math.Abs(a)
	case program.OpAcos:
		if a < -1 || a > 1 {
			return zeroResult
		}
		return math.Acos(a)
	case program.OpAcosh:
		if a < 1 {
			return zeroResult
		}
		return math.Acosh(a)
	case program.OpAsin:
		if a < -1 || a > 1 {
			return zeroResult
		}
		return math.Asin(a)
	case program.OpAsinh:
		return math.Asinh(a)
	case program.OpAtan:
		return math.Atan(a)
	case program.OpAtanh:
		if a <= -1 || a >= 1 {
			return zeroResult
		}
		return math.Atanh(a)
	case program.OpCbrt:
		return math.Cbrt(a)
	case program.OpCos:
		return math.Cos(a)
	case program.OpCosh:
		return math.Cosh(a)
	case program.OpCube:
		return a * a * a
	case program.OpExp:
		return math.Exp(a)
	case program.OpInv:
		if math.Abs(a) < MinDenominator {
			return zeroResult
		}
		return 1 / a
	case program.OpLog:
		if math.Abs(a) < MinDenominator {
			return zeroResult
		}
		return math.Log(math.Abs(a))
	case program.OpNeg:
		return -a
	case program.OpRsqrt:
		if math.Abs(a) < MinDenominator {
			return zeroResult
		}
		return 1 / math.Sqrt(math.Abs(a))
	case program.OpSin:
		return math.Sin(a)
	case program.OpSinh:
		return math.Sinh(a)
	case program.OpSq:
		return a * a
	case program.OpSqrt:
		return math.Sqrt(math.Abs(a))
	case program.OpTan:
		return math.Tan(a)
	case program.OpTanh:
		return math.Tanh(a)
	default:
		return zeroResult
	}
}

func finiteOr(x, fallback float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fallback
	}
	return x
}
