package config

import "os"

func IsDebug() bool {
	return os.Getenv("BANTER_DEBUG") == "1"
}
