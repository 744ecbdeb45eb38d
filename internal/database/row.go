package database

import (
	"strconv"
	"time"
)

// Row is the canonical row representation at the gateway boundary: one
// field-name-to-value mapping per result row. The MySQL driver hands back a
// mix of []byte, int64, float64 and time.Time depending on column type and
// statement mode; the typed accessors below collapse that so the record
// models never branch on row shape.
type Row map[string]any

func (r Row) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return ""
	}
}

func (r Row) Int64(key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case []byte:
		n, _ := strconv.ParseInt(string(v), 10, 64)
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}

// NullInt64 reports whether the column was non-NULL alongside its value,
// for optional references like employees.department_id.
func (r Row) NullInt64(key string) (int64, bool) {
	if v, ok := r[key]; !ok || v == nil {
		return 0, false
	}
	return r.Int64(key), true
}

// Float handles DECIMAL columns, which the driver returns as []byte.
func (r Row) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case []byte:
		f, _ := strconv.ParseFloat(string(v), 64)
		return f
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

func (r Row) Time(key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return v
	case []byte:
		t, _ := time.Parse("2006-01-02 15:04:05", string(v))
		return t
	case string:
		t, _ := time.Parse("2006-01-02 15:04:05", v)
		return t
	default:
		return time.Time{}
	}
}
