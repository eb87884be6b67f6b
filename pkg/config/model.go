package config

import "time"

// #nosec
const (
	IsAtRemote = "IS_AT_REMOTE"

	ServerPort = "PORT"

	MongodbUri               = "MONGODB_URI"
	MongodbUsername          = "DB_USER"
	MongodbPassword          = "DB_PASSWORD"
	MongodbDatabase          = "MONGODB_DATABASE"
	MongodbServiceCollection = "MONGODB_SERVICE_COLLECTION"
	MongodbReviewCollection  = "MONGODB_REVIEW_COLLECTION"
	MongodbTimeout           = "MONGODB_TIMEOUT"

	JwtSecret = "ACCESS_TOKEN"

	RedisAddress  = "REDIS_ADDRESS"
	RedisPassword = "REDIS_PASSWORD"
	RedisDatabase = "REDIS_DB"
	RedisTtl      = "REDIS_TTL"

	ReviewUpdateUpsert = "REVIEW_UPDATE_UPSERT"

	redacted = "<redacted>"
)

type MongodbConfig struct {
	Uri               string        `env:"MONGODB_URI" envDefault:"mongodb+srv://cluster0.5a1umhj.mongodb.net/?retryWrites=true&w=majority"`
	Username          string        `env:"DB_USER,required"`
	Password          string        `env:"DB_PASSWORD,required"`
	Database          string        `env:"MONGODB_DATABASE" envDefault:"beautyBase"`
	ServiceCollection string        `env:"MONGODB_SERVICE_COLLECTION" envDefault:"services"`
	ReviewCollection  string        `env:"MONGODB_REVIEW_COLLECTION" envDefault:"reviews"`
	Timeout           time.Duration `env:"MONGODB_TIMEOUT" envDefault:"10s"`
}

type JwtConfig struct {
	Secret string `env:"ACCESS_TOKEN,required"`
}

type RedisConfig struct {
	Address  string        `env:"REDIS_ADDRESS"`
	Password string        `env:"REDIS_PASSWORD"`
	Database int           `env:"REDIS_DB" envDefault:"0"`
	Ttl      time.Duration `env:"REDIS_TTL" envDefault:"5m"`
}

// Enabled reports whether a redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

type ReviewConfig struct {
	UpsertOnUpdate bool `env:"REVIEW_UPDATE_UPSERT" envDefault:"true"`
}
