// Package fsconv объясняет ошибки файловой системы.
package fsconv

import (
	"errors"
	"io/fs"
	"os"
	"syscall"

	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// Register добавляет конвертеры пакета в реестр.
func Register(r *ufe.Registry) {
	r.Register(
		ufe.For(explainPathError),
		ufe.For(explainLinkError),
		ufe.For(explainSyscallError),
	)
}

func explainPathError(err *fs.PathError, ctx *ufe.Context) ufe.UserFacingError {
	p := ctx.Printer()
	cause := ufe.NewCause()
	known := true

	switch {
	case errors.Is(err.Err, fs.ErrNotExist):
		cause = cause.WithSummary(p.Sprintf("File %q does not exist", err.Path)).
			WithExtendedReason(p.Sprintf("Check the path and make sure the file was not moved or deleted."))
	case errors.Is(err.Err, fs.ErrPermission):
		cause = cause.WithSummary(p.Sprintf("Access to %q is denied", err.Path)).
			WithExtendedReason(p.Sprintf("Check the permissions of the file and of the user running the program."))
	case errors.Is(err.Err, syscall.EISDIR):
		cause = cause.WithSummary(p.Sprintf("%q is a directory", err.Path)).
			WithExtendedReason(p.Sprintf("A regular file was expected at this path."))
	default:
		known = false
		cause = cause.WithSummary(p.Sprintf("Could not %s %q", err.Op, err.Path))
	}

	node := ufe.Leaf(cause)
	if !known || ctx.Verbose() {
		node = node.WithRelated(ufe.Dispatch(err.Err, ctx))
	}
	return node
}

func explainLinkError(err *os.LinkError, ctx *ufe.Context) ufe.UserFacingError {
	p := ctx.Printer()
	return ufe.Leaf(ufe.NewCause().
		WithSummary(p.Sprintf("Could not %s %q to %q", err.Op, err.Old, err.New))).
		WithRelated(ufe.Dispatch(err.Err, ctx))
}

func explainSyscallError(err *os.SyscallError, ctx *ufe.Context) ufe.UserFacingError {
	p := ctx.Printer()
	return ufe.Leaf(ufe.NewCause().
		WithSummary(p.Sprintf("System call %s failed", err.Syscall))).
		WithRelated(ufe.Dispatch(err.Err, ctx))
}
