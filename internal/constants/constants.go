// Package constants содержит константы ufe: версию, имена команд и коды завершения.
package constants

import "os"

// Version и PreCommitHash задаются при сборке:
//
//	go build -ldflags "-X github.com/Kargones/ufe/internal/constants.Version=1.2.0 \
//	    -X github.com/Kargones/ufe/internal/constants.PreCommitHash=$(git rev-parse --short HEAD)"
var (
	Version       = "dev"
	PreCommitHash = ""
)

// AppName — имя приложения в выводе и метриках.
const AppName = "ufe"

// APIVersion — версия формата JSON-вывода.
const APIVersion = "v1"

// Имена команд.
const (
	ActExplain    = "explain"
	ActConverters = "converters"
	ActDBCheck    = "db-check"
	ActVersion    = "version"
	ActHelp       = "help"
)

// Коды завершения процесса.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitUnknownCommand = 2
	ExitInvalidInput   = 3
	ExitDatabase       = 4
)

// DirPermStandard — права на создаваемые каталоги (owner rwx, group r-x).
const DirPermStandard os.FileMode = 0750
