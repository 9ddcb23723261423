// Package sqlconv объясняет ошибки database/sql и SQL Server.
package sqlconv

import (
	"database/sql"
	"database/sql/driver"
	"strconv"

	mssql "github.com/denisenkom/go-mssqldb"

	"github.com/Kargones/ufe/internal/pkg/ufe"
)

// Номера ошибок SQL Server с отдельными подсказками.
const (
	errLoginFailed       = 18456
	errCannotOpenDB      = 4060
	errDeadlock          = 1205
	errDuplicateKey      = 2627
	errDuplicateKeyIndex = 2601
	errObjectNotFound    = 208
)

// Register добавляет конвертеры пакета в реестр.
func Register(r *ufe.Registry) {
	r.Register(
		ufe.Custom("database/sql", isSQLSentinel, explainSQLSentinel),
		ufe.For(explainMSSQLError),
	)
}

func isSQLSentinel(err error) bool {
	switch err {
	case sql.ErrNoRows, sql.ErrConnDone, sql.ErrTxDone, driver.ErrBadConn:
		return true
	}
	return false
}

func explainSQLSentinel(err error, ctx *ufe.Context) ufe.UserFacingError {
	p := ctx.Printer()
	cause := ufe.NewCause()
	switch err {
	case sql.ErrNoRows:
		cause = cause.WithSummary(p.Sprintf("The requested record was not found"))
	case sql.ErrConnDone:
		cause = cause.WithSummary(p.Sprintf("The database connection is already closed"))
	case sql.ErrTxDone:
		cause = cause.WithSummary(p.Sprintf("The transaction is already finished")).
			WithExtendedReason(p.Sprintf("The transaction was committed or rolled back before this operation."))
	default:
		cause = cause.WithSummary(p.Sprintf("The database connection is broken")).
			WithExtendedReason(p.Sprintf("Check that the database server is running and retry."))
	}
	return ufe.Leaf(cause)
}

func explainMSSQLError(err mssql.Error, ctx *ufe.Context) ufe.UserFacingError {
	p := ctx.Printer()
	number := strconv.Itoa(int(err.Number))

	cause := ufe.NewCause()
	switch err.Number {
	case errLoginFailed:
		cause = cause.WithSummary(p.Sprintf("SQL Server rejected the login")).
			WithExtendedReason(p.Sprintf("Check the user name and password in the connection settings."))
	case errCannotOpenDB:
		cause = cause.WithSummary(p.Sprintf("SQL Server cannot open the database")).
			WithExtendedReason(p.Sprintf("Check that the database exists and the user has access to it."))
	case errDeadlock:
		cause = cause.WithSummary(p.Sprintf("The query was chosen as a deadlock victim")).
			WithExtendedReason(p.Sprintf("Retry the operation."))
	case errDuplicateKey, errDuplicateKeyIndex:
		cause = cause.WithSummary(p.Sprintf("A record with the same key already exists"))
	case errObjectNotFound:
		cause = cause.WithSummary(p.Sprintf("A database object referenced by the query does not exist"))
	default:
		cause = cause.WithSummary(p.Sprintf("SQL Server error %s: %s", number, err.Message))
	}

	if ctx.Verbose() {
		location := p.Sprintf("Error %s, severity %s, state %s", number, strconv.Itoa(int(err.Class)), strconv.Itoa(int(err.State)))
		if err.ProcName != "" {
			location += p.Sprintf(", procedure %s, line %s", err.ProcName, strconv.Itoa(int(err.LineNo)))
		}
		if err.ServerName != "" {
			location += p.Sprintf(", server %s", err.ServerName)
		}
		if cause.HasExtendedReason() {
			cause = cause.WithExtendedReason(cause.ExtendedReason + "\n" + location)
		} else {
			cause = cause.WithExtendedReason(location)
		}
	}

	node := ufe.Leaf(cause)
	if !ctx.Verbose() {
		return node
	}
	for _, other := range err.All {
		if other.Number == err.Number && other.Message == err.Message {
			continue
		}
		node = node.WithRelated(ufe.Dispatch(other, ctx))
	}
	return node
}
