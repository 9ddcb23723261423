// Package netconv объясняет сетевые ошибки и ошибки отмены контекста.
package netconv

import (
	"context"
	"errors"
	"net"
	"net/url"

	"github.com/Kargones/ufe/internal/pkg/ufe"
	"github.com/Kargones/ufe/internal/pkg/urlutil"
)

// Register добавляет конвертеры пакета в реестр.
func Register(r *ufe.Registry) {
	r.Register(
		ufe.For(explainURLError),
		ufe.For(explainOpError),
		ufe.For(explainDNSError),
		ufe.Custom("context", isContextError, explainContextError),
	)
}

func explainURLError(err *url.Error, ctx *ufe.Context) ufe.UserFacingError {
	p := ctx.Printer()
	target := urlutil.Redact(err.URL)

	cause := ufe.NewCause()
	if err.Timeout() {
		cause = cause.WithSummary(p.Sprintf("Request to %s timed out", target)).
			WithExtendedReason(p.Sprintf("The server did not answer in time. Check that it is reachable or increase the timeout."))
	} else {
		cause = cause.WithSummary(p.Sprintf("Request to %s failed", target))
	}
	return ufe.Leaf(cause).WithRelated(ufe.Dispatch(err.Err, ctx))
}

func explainOpError(err *net.OpError, ctx *ufe.Context) ufe.UserFacingError {
	p := ctx.Printer()
	addr := ""
	if err.Addr != nil {
		addr = err.Addr.String()
	}

	cause := ufe.NewCause()
	switch {
	case err.Op == "dial" && addr != "":
		cause = cause.WithSummary(p.Sprintf("Could not connect to %s", addr))
	case addr != "":
		cause = cause.WithSummary(p.Sprintf("Network operation %s on %s failed", err.Op, addr))
	default:
		cause = cause.WithSummary(p.Sprintf("Network operation %s failed", err.Op))
	}
	if err.Timeout() {
		cause = cause.WithExtendedReason(p.Sprintf("The remote side did not respond in time."))
	}
	return ufe.Leaf(cause).WithRelated(ufe.Dispatch(err.Err, ctx))
}

func explainDNSError(err *net.DNSError, ctx *ufe.Context) ufe.UserFacingError {
	p := ctx.Printer()
	cause := ufe.NewCause()
	switch {
	case err.IsNotFound:
		cause = cause.WithSummary(p.Sprintf("Host %q not found", err.Name)).
			WithExtendedReason(p.Sprintf("Check the host name and the DNS settings."))
	case err.IsTimeout:
		cause = cause.WithSummary(p.Sprintf("Resolving %q timed out", err.Name))
	default:
		cause = cause.WithSummary(p.Sprintf("Could not resolve %q", err.Name))
	}
	if ctx.Verbose() {
		cause = cause.WithExtendedReason(joinReason(cause.ExtendedReason, err.Error()))
	}
	return ufe.Leaf(cause)
}

func isContextError(err error) bool {
	return err == context.DeadlineExceeded || err == context.Canceled
}

func explainContextError(err error, ctx *ufe.Context) ufe.UserFacingError {
	p := ctx.Printer()
	if errors.Is(err, context.DeadlineExceeded) {
		return ufe.Leaf(ufe.NewCause().
			WithSummary(p.Sprintf("The operation timed out")).
			WithExtendedReason(p.Sprintf("Increase the timeout or retry later.")))
	}
	return ufe.Leaf(ufe.NewCause().WithSummary(p.Sprintf("The operation was canceled")))
}

func joinReason(reason, detail string) string {
	if reason == "" {
		return detail
	}
	return reason + "\n" + detail
}
