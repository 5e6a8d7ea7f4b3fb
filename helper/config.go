package helper

import (
	"fmt"

	"github.com/spf13/viper"
)

var CfgFile string

// CurrentConfig returns a configuration value scoped to the currently
// selected remote, e.g. `default.access_token`.
func CurrentConfig(key string) string {
	remote := viper.GetString("remote")
	return viper.GetString(fmt.Sprintf("%s.%s", remote, key))
}
