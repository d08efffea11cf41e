package config

import "time"

type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

type DB struct {
	Url string `envconfig:"URL"`
}

// Customer configures the customer directory lookup. The default points at
// the service's own built-in directory stub so a local instance is runnable
// end to end.
type Customer struct {
	ApiUrl      string        `envconfig:"API_URL" default:"http://localhost:3000"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[ledger]"`
}

type App struct {
	Env      string    `envconfig:"APP_ENV" default:"development"`
	Server   *Server   `envconfig:"SERVER"`
	DB       *DB       `envconfig:"DATABASE"`
	Customer *Customer `envconfig:"CUSTOMER"`
	Log      *Log      `envconfig:"LOG"`
}
