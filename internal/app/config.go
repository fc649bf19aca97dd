package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"keypadCalc/internal/api/http"
	"keypadCalc/internal/infrastructure/click"
	"keypadCalc/internal/infrastructure/kafka"
	"keypadCalc/internal/infrastructure/redis"
	"keypadCalc/internal/usecase/calculator"
)

const AppName = "CALCULATOR"

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
type Config struct {
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
	LogFile    string            `envconfig:"LOG_FILE" default:"keypadcalc.log"`
	Server     http.ServerConfig `envconfig:"SERVER"`
	Session    calculator.Config `envconfig:"SESSION"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
// envFiles пустой — ищется .env в текущей директории.
func LoadCfg(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
