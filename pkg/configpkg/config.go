// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	DBDriver            string        `mapstructure:"DB_DRIVER"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	MigrateOnStart      bool          `mapstructure:"MIGRATE_ON_START"`
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	TokenType           string        `mapstructure:"TOKEN_TYPE"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	Environement        string        `mapstructure:"GO_ENV"`
	MonobankURL         string        `mapstructure:"MONOBANK_URL"`
	PrivatbankURL       string        `mapstructure:"PRIVATBANK_URL"`
	CurrencyCacheTTL    time.Duration `mapstructure:"CURRENCY_CACHE_TTL"`
	CurrencyTimeout     time.Duration `mapstructure:"CURRENCY_TIMEOUT"`
	AMQPURL             string        `mapstructure:"AMQP_URL"`
	AMQPExchange        string        `mapstructure:"AMQP_EXCHANGE"`
}

// Token types supported by TOKEN_TYPE.
const (
	TokenTypePaseto = "paseto"
	TokenTypeJWT    = "jwt"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("TOKEN_TYPE", TokenTypePaseto)
	v.SetDefault("ACCESS_TOKEN_DURATION", 15*time.Minute)
	v.SetDefault("MONOBANK_URL", "https://api.monobank.ua/bank/currency")
	v.SetDefault("PRIVATBANK_URL", "https://api.privatbank.ua/p24api/pubinfo?json&exchange&coursid=5")
	v.SetDefault("CURRENCY_CACHE_TTL", time.Hour)
	v.SetDefault("CURRENCY_TIMEOUT", 5*time.Second)
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "moneyguard.notifications")
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("MIGRATE_ON_START", false)
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
