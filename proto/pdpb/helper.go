package pdpb

import "fmt"

func (x *Error) Error() string {
	return fmt.Sprintf("%s, kind: %s", x.Msg, x.Kind)
}
