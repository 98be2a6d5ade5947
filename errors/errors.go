package errors

import "fmt"

// Kind identifies one of the closed set of featherPD error kinds. The set is
// closed on purpose: the transport codec in status.go and the pb transform in
// proto/pdpb must stay in lockstep with it, otherwise errors crossing the RPC
// boundary silently degenerate to KindInternal.
type Kind int

const (
	KindInternal Kind = iota
	KindAbort
	KindConfig
	KindParse
	KindReadOnly
	KindSerialization
	KindValue
	KindNotLeader
)

var kindNames = [...]string{
	KindInternal:      "Internal",
	KindAbort:         "Abort",
	KindConfig:        "Config",
	KindParse:         "Parse",
	KindReadOnly:      "ReadOnly",
	KindSerialization: "Serialization",
	KindValue:         "Value",
	KindNotLeader:     "NotLeader",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// HasDetail reports whether the kind carries a free-form detail string.
func (k Kind) HasDetail() bool {
	switch k {
	case KindConfig, KindInternal, KindParse, KindValue:
		return true
	}
	return false
}

func (k Kind) fixedMsg() string {
	switch k {
	case KindAbort:
		return "Operation aborted"
	case KindReadOnly:
		return "Read-only transaction"
	case KindSerialization:
		return "Serialization failure, retry transaction"
	case KindNotLeader:
		return "Not leader"
	}
	return ""
}

// Error is the in-process representation of a featherPD failure. All kinds
// except KindInternal are considered user-facing. Msg is meaningful only for
// kinds with HasDetail().
type Error struct {
	Kind Kind
	Msg  string
}

var (
	ErrAbort         = &Error{Kind: KindAbort}
	ErrReadOnly      = &Error{Kind: KindReadOnly}
	ErrSerialization = &Error{Kind: KindSerialization}
	ErrNotLeader     = &Error{Kind: KindNotLeader}
)

func NewError(kind Kind, msg string) *Error {
	return &Error{
		Kind: kind,
		Msg:  msg,
	}
}

func Configf(format string, v ...interface{}) *Error {
	return NewError(KindConfig, fmt.Sprintf(format, v...))
}

func Internalf(format string, v ...interface{}) *Error {
	return NewError(KindInternal, fmt.Sprintf(format, v...))
}

func Parsef(format string, v ...interface{}) *Error {
	return NewError(KindParse, fmt.Sprintf(format, v...))
}

func Valuef(format string, v ...interface{}) *Error {
	return NewError(KindValue, fmt.Sprintf(format, v...))
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Kind.HasDetail() {
		return e.Msg
	}
	return e.Kind.fixedMsg()
}

// IsRetryableErr reports whether the caller should retry the whole
// transaction.
func IsRetryableErr(e error) bool {
	ve, ok := e.(*Error)
	if !ok {
		return false
	}
	return ve.Kind == KindSerialization
}

// IsNotLeaderErr reports whether the caller should redirect to the current
// leader.
func IsNotLeaderErr(e error) bool {
	ve, ok := e.(*Error)
	if !ok {
		return false
	}
	return ve.Kind == KindNotLeader
}

func Equal(err1, err2 error) bool {
	if err1 == nil || err2 == nil {
		return err1 == nil && err2 == nil
	}
	e1, ok1 := err1.(*Error)
	e2, ok2 := err2.(*Error)
	if ok1 && ok2 {
		return e1.Kind == e2.Kind && e1.Msg == e2.Msg
	}
	return err1.Error() == err2.Error()
}

func NotEqual(err1, err2 error) bool {
	return !Equal(err1, err2)
}
