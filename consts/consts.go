package consts

import "time"

const (
	DefaultPDServerPort = 5555

	DefaultClientRequestTimeout = time.Minute
)
