package app

import (
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
	"github.com/rulzurlabs/rulzurapi/internal/utils"
)

type Config struct {
	HTTPAddr string
}

func LoadConfig(log *logger.Logger) Config {
	httpAddr := utils.GetEnv("HTTP_ADDR", ":5000", log)
	return Config{
		HTTPAddr: httpAddr,
	}
}
