package errors

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// The gRPC status channel only carries a code and a message string, so errors
// crossing it are encoded as "[<Kind>] <detail>". The status code itself is
// always codes.Internal and never used to discriminate kinds, which keeps the
// taxonomy independent from the transport's own code enumeration.

// Tag returns the bracketed marker leading every transport message of this
// kind, e.g. "[NotLeader]".
func (k Kind) Tag() string {
	return "[" + k.String() + "]"
}

// ToStatus encodes e for the gRPC status channel. Kinds without a detail
// string are rendered with their fixed phrase so the message stays readable
// on non-featherPD peers.
func ToStatus(e *Error) *status.Status {
	if e == nil {
		return nil
	}
	return status.New(codes.Internal, e.Kind.Tag()+" "+e.Error())
}

// FromStatus decodes a gRPC status produced by a peer. It is total: messages
// not led by a recognized tag come back as KindInternal carrying the raw
// message, so nothing is silently dropped on protocol mismatch.
func FromStatus(st *status.Status) *Error {
	fields := strings.Fields(st.Message())
	var tag string
	if len(fields) > 0 {
		tag = fields[0]
	}
	switch tag {
	case KindConfig.Tag():
		return NewError(KindConfig, strings.Join(fields[1:], " "))
	case KindInternal.Tag():
		return NewError(KindInternal, strings.Join(fields[1:], " "))
	case KindParse.Tag():
		return NewError(KindParse, strings.Join(fields[1:], " "))
	case KindValue.Tag():
		return NewError(KindValue, strings.Join(fields[1:], " "))
	case KindAbort.Tag():
		return ErrAbort
	case KindReadOnly.Tag():
		return ErrReadOnly
	case KindSerialization.Tag():
		return ErrSerialization
	case KindNotLeader.Tag():
		return ErrNotLeader
	default:
		return Internalf("Unknown error type: %q", st.Message())
	}
}

// FromError adapts an arbitrary error into the taxonomy. Taxonomy errors pass
// through untouched, gRPC status errors are decoded with FromStatus, anything
// else degrades to KindInternal.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	if st, ok := status.FromError(err); ok {
		return FromStatus(st)
	}
	return NewError(KindInternal, err.Error())
}
