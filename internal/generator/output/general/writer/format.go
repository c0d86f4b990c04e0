package writer

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// FormatValue converts generated value to its textual form.
// Nil is formatted as empty string, composite values are encoded as JSON.
//
//nolint:cyclop
func FormatValue(value any, floatPrecision int, datetimeFormat string) (string, error) {
	if value == nil {
		return "", nil
	}

	switch v := value.(type) {
	case time.Time:
		if strings.ToLower(datetimeFormat) == "unix" {
			return strconv.FormatInt(v.Unix(), 10), nil
		}

		return v.Format(datetimeFormat), nil
	case uuid.UUID:
		return v.String(), nil
	case fmt.Stringer:
		return v.String(), nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', floatPrecision, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', floatPrecision, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		data, err := json.Marshal(value)
		if err != nil {
			return "", errors.Errorf("failed to encode value %v: %s", value, err)
		}

		return string(data), nil
	default:
		return "", errors.Errorf("unsupported type of value %v: %T", value, value)
	}
}

// RoundFloat function rounds the float to the specified precision.
func RoundFloat(val float64, precision int) float64 {
	ratio := math.Pow(10, float64(precision)) //nolint:mnd

	return math.Round(val*ratio) / ratio
}
