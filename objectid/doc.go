// Package objectid mints and validates opaque, type-tagged object
// identifiers.
//
// An identifier is 18 bytes: a format version, a one-byte object type tag
// and a 16-byte payload, carried as unpadded base64url text. Mutable object
// types get a random payload; immutable types embed a caller-supplied one,
// usually a content hash (see ContentHash and Codec.MintContent).
//
// # Usage
//
//	id, err := objectid.Mint("user", nil)
//	name, err := objectid.TypeOf(id) // "user"
//
//	sum, _ := objectid.ContentHash(objectid.HashBlake2b, secret)
//	cred, err := objectid.Mint("credential", sum)
//
// Every failure is an *errors.AppError with code invalid_request, except a
// failing random source which is reported as internal.
package objectid
