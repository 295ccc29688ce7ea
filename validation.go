package logger

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *Config) error {
	const op Op = "logger.validateConfig"
	if cfg == nil {
		return newInitError(op, errMsgNilConfig, nil)
	}
	if cfg.Console == nil && cfg.File == nil {
		return newInitError(op, errMsgNoSinks, nil)
	}

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(cfg); err != nil {
		return newInitError(op, errMsgConfigInvalid, err)
	}

	return nil
}
