package doubleint

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

var (
	_ driver.Valuer       = DoubleInt{}
	_ sql.Scanner         = (*DoubleInt)(nil)
	_ pgtype.Int64Valuer  = DoubleInt{}
	_ pgtype.Int64Scanner = (*DoubleInt)(nil)
)

// Value implements driver.Valuer. The value is stored as an int64.
func (d DoubleInt) Value() (driver.Value, error) {
	return d.v, nil
}

// Scan implements sql.Scanner.
//
// Only int64 sources are accepted; NULL, floats, text and bytes fail with
// *ErrTypeMismatch. Use sql.Null[DoubleInt] for nullable columns.
func (d *DoubleInt) Scan(src any) error {
	switch s := src.(type) {
	case int64:
		v, err := New(s)
		if err != nil {
			return err
		}
		*d = v
		return nil
	case nil:
		return typeMismatch("sql", "NULL", nil)
	default:
		return typeMismatch("sql", fmt.Sprintf("%T", src), nil)
	}
}

// Int64Value implements pgtype.Int64Valuer so pgx encodes the value as int8.
func (d DoubleInt) Int64Value() (pgtype.Int8, error) {
	return pgtype.Int8{Int64: d.v, Valid: true}, nil
}

// ScanInt64 implements pgtype.Int64Scanner.
func (d *DoubleInt) ScanInt64(v pgtype.Int8) error {
	if !v.Valid {
		return typeMismatch("postgres", "NULL", nil)
	}
	dv, err := New(v.Int64)
	if err != nil {
		return err
	}
	*d = dv
	return nil
}
