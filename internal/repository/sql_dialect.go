package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

func isPostgresDialect(dialect string) bool {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return true
	default:
		return false
	}
}

// containsConditionByDialect 构建大小写不敏感的包含匹配条件。
func containsConditionByDialect(dialect, column string) string {
	if isPostgresDialect(dialect) {
		return fmt.Sprintf(`%s ILIKE ? ESCAPE '\'`, column)
	}
	// sqlite 的 LIKE 仅对 ASCII 忽略大小写，统一转小写比较
	return fmt.Sprintf(`LOWER(%s) LIKE LOWER(?) ESCAPE '\'`, column)
}

// escapeLike 转义 LIKE 通配符
func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return replacer.Replace(value)
}

// forUpdate 在支持行锁的方言上追加 SELECT ... FOR UPDATE（sqlite 事务本身即为串行写）。
func forUpdate(db *gorm.DB) *gorm.DB {
	if isPostgresDialect(dbDialectName(db)) {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}
