package settings

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type Config struct {
	Logger Logger `mapstructure:"logger"`
	BTree  BTree  `mapstructure:"btree"`
	Verify Verify `mapstructure:"verify"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`  // Days
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress"`
}

// BTree is the configuration for trees built from config
type BTree struct {
	Order int  `mapstructure:"order" validate:"gte=3"`
	Trace bool `mapstructure:"trace"`
}

// Verify is the configuration for the property verifier
type Verify struct {
	Orders      []int  `mapstructure:"orders" validate:"min=1,dive,gte=3"`
	Keys        int    `mapstructure:"keys" validate:"gte=1"`
	Seed        uint64 `mapstructure:"seed"`
	Parallelism int    `mapstructure:"parallelism" validate:"gte=0"` // 0 means one worker per order
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns a config for a 2-3 tree logging at info level to stderr.
func Default() Config {
	return Config{
		Logger: Logger{LogLevel: "info"},
		BTree:  BTree{Order: 3},
		Verify: Verify{
			Orders: []int{3, 4, 5, 6, 7, 8, 16, 32},
			Keys:   1000,
			Seed:   1,
		},
	}
}

// Validate checks every section against its constraints.
func (c *Config) Validate() error {
	return ValidateStruct(c)
}

// ValidateStruct runs the shared validator over any tagged struct.
func ValidateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return errors.Wrap(err, "invalid settings")
	}
	return nil
}
