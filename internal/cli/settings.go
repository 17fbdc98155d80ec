package cli

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/scraper-bots/startup-az/internal/model"
	"github.com/spf13/viper"
)

// loadConfig layers the config file and bound environment values over the
// built-in defaults. Flags are applied on top by the commands, and only
// when explicitly set, so the documented precedence holds.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()
	err := viper.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed configuration: %v\n", err)
		return model.DefaultConfig()
	}
	return cfg
}
