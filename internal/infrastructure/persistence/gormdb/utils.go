package gormdb

import (
	"errors"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// 驱动错误码
const (
	mysqlDuplicateEntry   = 1062 // Duplicate entry 'xxx' for key 'yyy'
	mysqlRowIsReferenced  = 1451 // Cannot delete or update a parent row
	mysqlNoReferencedRow  = 1452 // Cannot add or update a child row
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isDuplicateError 判断是否为唯一索引冲突
// TranslateError开启时gorm已翻译为ErrDuplicatedKey,驱动错误码作为兜底
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return strings.Contains(err.Error(), "Duplicate entry")
}

// isForeignKeyError 判断是否为外键约束冲突
// 包括引用不存在的作者,以及删除仍被图书引用的作者
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlRowIsReferenced || myErr.Number == mysqlNoReferencedRow
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	return false
}
