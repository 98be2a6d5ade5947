package pdpb

import (
	"github.com/leisurelyrcxf/featherpd/errors"
)

// ErrorKind values are numbered identically to errors.Kind, both sides assert
// that in tests so the cast below stays safe.

func ToPBError(e *errors.Error) *Error {
	if e == nil {
		return nil
	}
	return &Error{
		Kind: ErrorKind(e.Kind),
		Msg:  e.Error(),
	}
}

func (x *Error) ToError() *errors.Error {
	if x == nil {
		return nil
	}
	switch kind := errors.Kind(x.Kind); kind {
	case errors.KindConfig, errors.KindInternal, errors.KindParse, errors.KindValue:
		return errors.NewError(kind, x.Msg)
	case errors.KindAbort:
		return errors.ErrAbort
	case errors.KindReadOnly:
		return errors.ErrReadOnly
	case errors.KindSerialization:
		return errors.ErrSerialization
	case errors.KindNotLeader:
		return errors.ErrNotLeader
	}
	return errors.Internalf("unknown error kind %d: %s", int32(x.Kind), x.Msg)
}
