package pgtable

import "time"

type Config struct {
	ConnectionString string `env:"PG_CONN_URL,required"`              // ConnectionString is the connection string to the database.
	MaxOpenConns     int32  `env:"PG_MAX_OPEN_CONNS" envDefault:"4"`  // MaxOpenConns is the maximum number of open connections; audits are sequential, keep it small.
	MaxIdleConns     int32  `env:"PG_MAX_IDLE_CONNS" envDefault:"1"`  // MaxIdleConns is the maximum number of idle connections kept between passes.

	RetryAttempts int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`  // RetryAttempts is the number of retry attempts to connect to the database.
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"` // RetryInterval is the base interval between retry attempts.
}
