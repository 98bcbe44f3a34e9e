package gormdb

import (
	"errors"
	"fmt"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm翻译后", gorm.ErrDuplicatedKey, true},
		{"mysql 1062", &mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"mysql其他错误", &mysqldriver.MySQLError{Number: 1452}, false},
		{"postgres 23505", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, true},
		{"sqlite外键", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, false},
		{"错误信息兜底", errors.New("Error 1062: Duplicate entry 'a' for key 'name'"), true},
		{"普通错误", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDuplicateError(tt.err))
		})
	}
}

func TestIsForeignKeyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm翻译后", gorm.ErrForeignKeyViolated, true},
		{"mysql 1451", &mysqldriver.MySQLError{Number: 1451}, true},
		{"mysql 1452", &mysqldriver.MySQLError{Number: 1452}, true},
		{"postgres 23503", &pgconn.PgError{Code: "23503"}, true},
		{"postgres 23505", &pgconn.PgError{Code: "23505"}, false},
		{"sqlite外键", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, true},
		{"普通错误", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isForeignKeyError(tt.err))
		})
	}
}
