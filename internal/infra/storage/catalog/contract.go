package catalog

import "github.com/Celia92000/laia-skin-nextjs-sub023/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов
type DBExecutor = dbmetrics.DBExecutor
