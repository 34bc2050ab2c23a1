package blockedslot

import "github.com/Celia92000/laia-skin-nextjs-sub023/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов (*sql.DB, *sql.Tx, *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor
