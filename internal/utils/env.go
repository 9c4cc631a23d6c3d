package utils

import (
	"os"
	"strconv"
)

// EnvString overwrites dst with the value of key when it is set and not empty
func EnvString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// EnvInt works like EnvString for integers. Values that do not parse are ignored.
func EnvInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
