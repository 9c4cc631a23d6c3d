package utils

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog/log"
)

// MaybeCrash выводит подробности об ошибке и завершает программу с кодом 1
// если ошибка != nil
func MaybeCrash(err error) {
	if err != nil {
		log.Fatal().Msg(prettify(err, 2))
	}
}

// PrettifyError prefixes err with the file:line of the caller
func PrettifyError(err error) string {
	return prettify(err, 2)
}

func prettify(err error, skip int) string {
	_, filename, line, ok := runtime.Caller(skip)
	if !ok {
		return fmt.Sprintf("[error] %v", err)
	}
	return fmt.Sprintf("[error] %s:%d %v", filepath.Base(filename), line, err)
}
