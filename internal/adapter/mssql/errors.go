package mssql

import (
	"errors"
	"fmt"

	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// ErrNotConnected возвращается операциями, вызванными до Connect.
var ErrNotConnected = errors.New("mssql: connection not established")

// ConnectError — не удалось установить соединение с сервером.
// Err — ошибка драйвера (mssql.Error, net.OpError) или ошибка контекста.
type ConnectError struct {
	Server string
	Err    error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("mssql: connect to %s: %v", e.Server, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// Explain называет сервер; подробности даёт конвертер ошибки драйвера.
func (e *ConnectError) Explain(ctx *ufe.Context) ufe.UserFacingError {
	cause := ufe.NewCause().WithSummary(ctx.Printer().Sprintf("Could not connect to %s", e.Server))
	return ufe.Leaf(cause).WithRelated(ufe.Dispatch(e.Err, ctx))
}
