// Package errors provides the error taxonomy shared by the identifier codec
// and any HTTP boundary built on top of it.
//
// Every failure is an *AppError carrying a closed ErrorCode, a client-facing
// message and the HTTP status it maps to. HTTPResponse performs the mapping
// explicitly; server errors are reported without a body.
package errors
