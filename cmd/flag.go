package cmd

import "flag"

var (
	FlagPort *int
)

func RegisterPortFlags(defaultPort int) {
	FlagPort = flag.Int("port", defaultPort, "port")
}

func ParseFlags() {
	flag.Parse()
}
