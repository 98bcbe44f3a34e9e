package author

import (
	"time"
)

// Author 作者实体
type Author struct {
	ID        uint
	Name      string // 唯一,最长64
	CreatedAt time.Time
	UpdatedAt *time.Time // 只在部分更新时写入,创建后为nil
}

// Update 作者部分更新
// Name为nil或空字符串时保持原值
type Update struct {
	Name *string
}

// HasName 是否需要更新名字
func (u Update) HasName() bool {
	return u.Name != nil && *u.Name != ""
}
