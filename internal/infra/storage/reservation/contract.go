package reservation

import "github.com/Celia92000/laia-skin-nextjs-sub023/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
