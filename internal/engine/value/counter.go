package value

import (
	"github.com/JoshuaBOUCHAT/radixox/internal/engineerr"
)

// Incr applies delta to the integer interpretation of cur (treating a
// missing value as zero), returning the new IntValue to store and its
// numeric result. A String value parses as an integer the same way Redis
// does; anything that doesn't parse, and any collection variant, reports
// ErrNotAnInteger — there is no WrongType outcome for a counter op.
//
// Overflow is checked explicitly rather than relying on wraparound: negating
// math.MinInt64 itself overflows int64, so the INCRBY/DECRBY boundary (the
// caller negates delta for DECRBY) must guard delta == math.MinInt64 before
// calling Incr.
func Incr(cur Value, delta int64) (IntValue, int64, error) {
	var base int64

	if cur != nil {
		switch cur.RedisType() {
		case TypeString:
			n, ok := ToInt(cur)
			if !ok {
				return 0, 0, engineerr.ErrNotAnInteger
			}
			base = n
		default:
			return 0, 0, engineerr.ErrNotAnInteger
		}
	}

	sum, overflow := addOverflow(base, delta)
	if overflow {
		return 0, 0, engineerr.ErrOverflow
	}

	return IntValue(sum), sum, nil
}

func addOverflow(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, true
	}
	return sum, false
}
