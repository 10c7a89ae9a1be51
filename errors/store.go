package errors

import stderrors "errors"

// SQLSTATE codes translated into client errors.
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateInvalidTextRepresent = "22P02"
)

// sqlStater is implemented by driver errors that expose a SQLSTATE code,
// such as pgconn.PgError.
type sqlStater interface {
	SQLState() string
}

// FromStore classifies an error returned by a data store. Unique violations
// and malformed parameters become client errors, AppErrors pass through, and
// everything else (including a nil error) becomes Internal.
func FromStore(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	if st, ok := asSQLStater(err); ok {
		switch st.SQLState() {
		case sqlStateUniqueViolation:
			return BadRequest(MsgResourceExists).WithCause(err)
		case sqlStateInvalidTextRepresent:
			return BadRequest(MsgImproperParams).WithCause(err)
		}
	}
	return Internal(err)
}

func asSQLStater(err error) (sqlStater, bool) {
	var st sqlStater
	if stderrors.As(err, &st) {
		return st, true
	}
	return nil, false
}
