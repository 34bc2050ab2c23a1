package health

import "context"

// Pinger проверка соединения с базой (*sql.DB)
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}
