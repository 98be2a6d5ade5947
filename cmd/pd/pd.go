package main

import (
	"flag"

	"github.com/golang/glog"

	"github.com/leisurelyrcxf/featherpd/cmd"
	"github.com/leisurelyrcxf/featherpd/consts"
	"github.com/leisurelyrcxf/featherpd/oracle"
	"github.com/leisurelyrcxf/featherpd/oracle/impl/logical"
	"github.com/leisurelyrcxf/featherpd/oracle/impl/physical"
	"github.com/leisurelyrcxf/featherpd/pd"
)

func main() {
	cmd.RegisterPortFlags(consts.DefaultPDServerPort)
	flagPhysical := flag.Bool("physical", false, "use wall clock instead of the logical counter")
	cmd.ParseFlags()

	var o oracle.Oracle
	if *flagPhysical {
		o = physical.NewOracle()
	} else {
		o = logical.NewOracle()
		glog.Infof("logical oracle is not durable, timestamps restart from 0")
	}

	server := pd.NewServer(*cmd.FlagPort, o, nil)
	if err := server.Start(); err != nil {
		glog.Fatalf("failed to start: %v", err)
	}
	glog.Infof("placement driver serving on port %d", *cmd.FlagPort)
	<-server.Done
}
