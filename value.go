package sqlclient

import (
	"strconv"

	"github.com/eatonphil/sqlclient/service"
)

// FormatValue renders one query cell.
func FormatValue(v *service.Value) string {
	switch c := v.GetValue().(type) {
	case *service.Value_IntValue:
		return strconv.FormatInt(c.IntValue, 10)
	case *service.Value_FloatValue:
		return strconv.FormatFloat(c.FloatValue, 'g', -1, 64)
	case *service.Value_VarcharValue:
		return c.VarcharValue
	default:
		return "NULL"
	}
}

// FormatElapsed scales a duration in microseconds to us, ms or s.
func FormatElapsed(us int64) string {
	v := float64(us)
	switch {
	case us < 1000:
		return strconv.FormatFloat(v, 'f', 3, 64) + "us"
	case us < 1000000:
		return strconv.FormatFloat(v/1e3, 'f', 3, 64) + "ms"
	default:
		return strconv.FormatFloat(v/1e6, 'f', 3, 64) + "s"
	}
}
