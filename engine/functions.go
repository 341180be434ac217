package engine

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"sync"

	sqlite "modernc.org/sqlite"
)

var registerOnce sync.Once

// RegisterPointFunctions registers pt_chebyshev and pt_within with the driver
// so they are available on connections opened after this call. Registration
// happens once per process; later calls are no-ops.
//
//	pt_chebyshev(x1, y1, x2, y2) -> REAL, the L-infinity distance
//	pt_within(x, y, qx, qy, d)   -> INTEGER 1 when (x, y) is within d of (qx, qy)
func RegisterPointFunctions() error {
	var err error
	registerOnce.Do(func() {
		if err = sqlite.RegisterDeterministicScalarFunction("pt_chebyshev", 4, ptChebyshevImpl); err != nil {
			return
		}
		err = sqlite.RegisterDeterministicScalarFunction("pt_within", 5, ptWithinImpl)
	})
	return err
}

func ptChebyshevImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 4 {
		return nil, fmt.Errorf("pt_chebyshev: expected 4 arguments, got %d", len(args))
	}
	c, err := asCoordinates(args)
	if err != nil || c == nil {
		return nil, err
	}
	return chebyshev(c[0], c[1], c[2], c[3]), nil
}

func ptWithinImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 5 {
		return nil, fmt.Errorf("pt_within: expected 5 arguments, got %d", len(args))
	}
	c, err := asCoordinates(args)
	if err != nil || c == nil {
		return nil, err
	}
	if chebyshev(c[0], c[1], c[2], c[3]) <= c[4] {
		return int64(1), nil
	}
	return int64(0), nil
}

// asCoordinates converts all arguments; a NULL argument yields (nil, nil) so
// the SQL result is NULL.
func asCoordinates(args []driver.Value) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case nil:
			return nil, nil
		case float64:
			out[i] = v
		case int64:
			out[i] = float64(v)
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("pt: argument %d: cannot parse %q", i+1, v)
			}
			out[i] = f
		default:
			return nil, fmt.Errorf("pt: argument %d: unsupported type %T", i+1, arg)
		}
	}
	return out, nil
}

// Local minimal helper to avoid import cycles in tests.
func chebyshev(x1, y1, x2, y2 float64) float64 {
	return math.Max(math.Abs(x1-x2), math.Abs(y1-y2))
}
