package objectid

import (
	"github.com/google/uuid"

	"github.com/kbukum/objectid/errors"
)

// MsgMalformedUUID is returned when a UUID payload cannot be parsed.
const MsgMalformedUUID = "payload is not a valid uuid"

// PayloadFromUUID returns the 16 bytes of s for use as an immutable payload.
// Any form uuid.Parse accepts is allowed.
func PayloadFromUUID(s string) ([]byte, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return nil, errors.InvalidArgument(MsgMalformedUUID).WithCause(err)
	}
	return u[:], nil
}

// PayloadUUID returns the payload formatted as a UUID.
func (id ID) PayloadUUID() string {
	var u uuid.UUID
	copy(u[:], id[payloadOffset:])
	return u.String()
}
