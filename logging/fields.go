package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Stringer is implemented by the domain types we want to log whole.
type Stringer interface {
	String() string
}

func Bool(name string, b bool) zap.Field {
	return zap.Bool(name, b)
}

func Duration(name string, d time.Duration) zap.Field {
	return zap.Duration(name, d)
}

func Error(err error) zap.Field {
	return zap.Error(err)
}

func Int(name string, i int) zap.Field {
	return zap.Int(name, i)
}

func Int64(name string, i int64) zap.Field {
	return zap.Int64(name, i)
}

func String(name, s string) zap.Field {
	return zap.String(name, s)
}

func Uint64(name string, u uint64) zap.Field {
	return zap.Uint64(name, u)
}

// BigUint logs a large unsigned value through its string form.
func BigUint(name string, u Stringer) zap.Field {
	if u == nil {
		return zap.String(name, "nil")
	}
	return zap.String(name, u.String())
}

func Decimal(name string, d Stringer) zap.Field {
	return zap.String(name, d.String())
}

func Order(o Stringer) zap.Field {
	return zap.String("order", o.String())
}

func OrderID(id string) zap.Field {
	return zap.String("order-id", id)
}

func Trade(t Stringer) zap.Field {
	return zap.String("trade", t.String())
}

func Instrument(id string) zap.Field {
	return zap.String("instrument", id)
}

func ExecutionID(id string) zap.Field {
	return zap.String("execution-id", id)
}

func Reflect(name string, v interface{}) zap.Field {
	return zap.String(name, fmt.Sprintf("%+v", v))
}
