package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// 建出来的表必须带外键：points.uid → user.uid，goods.sid / goods_requests.sid → shop.sid
func TestMigrateCreatesForeignKeys(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	ddl := func(table string) string {
		var sql string
		require.NoError(t, db.Raw(
			"SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&sql).Error)
		return sql
	}

	require.Contains(t, ddl("points"), "REFERENCES `user`")
	require.Contains(t, ddl("goods"), "REFERENCES `shop`")
	require.Contains(t, ddl("goods_requests"), "REFERENCES `shop`")
}
