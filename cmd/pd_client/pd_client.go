package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/golang/glog"

	"github.com/leisurelyrcxf/featherpd/cmd"
	"github.com/leisurelyrcxf/featherpd/consts"
	"github.com/leisurelyrcxf/featherpd/errors"
	"github.com/leisurelyrcxf/featherpd/pd"
)

func completer(d prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{
		{Text: "tso", Description: "fetch a timestamp"},
		{Text: "locate", Description: "locate key"},
		{Text: "quit", Description: "quit terminal"},
		{Text: "exit", Description: "quit terminal"},
	}
	return prompt.FilterHasPrefix(s, d.GetWordBeforeCursor(), true)
}

func trimmedSplit(str string, sep string) []string {
	parts := strings.Split(str, sep)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

func main() {
	flagHost := flag.String("host", "127.0.0.1", "host")
	cmd.RegisterPortFlags(consts.DefaultPDServerPort)
	cmd.ParseFlags()

	pdClient, err := pd.NewClient(fmt.Sprintf("%s:%d", *flagHost, *cmd.FlagPort))
	if err != nil {
		glog.Fatalf("can't create pd client")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		quit = false

		executor = func(promptText string) {
			cmds := trimmedSplit(promptText, ";")
			for i := 0; ; i++ {
				if quit {
					os.Exit(1)
				}

				if i >= len(cmds) {
					break
				}

				var t = cmds[i]
				if t == "tso" {
					requestCtx, requestCancel := context.WithTimeout(ctx, consts.DefaultClientRequestTimeout)
					ts, err := pdClient.GetTimestamp(requestCtx)
					requestCancel()
					if err != nil {
						fmt.Printf("tso failed: %v\n", err)
						if errors.IsNotLeaderErr(err) {
							fmt.Println("redirect to the current leader and retry")
						}
						continue
					}
					fmt.Println(ts)
				} else if strings.HasPrefix(t, "locate") {
					remain := strings.TrimPrefix(t, "locate")
					if !strings.HasPrefix(remain, " ") {
						fmt.Println("invalid locate command, use 'locate key'")
						continue
					}
					key := strings.TrimPrefix(remain, " ")
					requestCtx, requestCancel := context.WithTimeout(ctx, consts.DefaultClientRequestTimeout)
					loc, err := pdClient.GetDataLocation(requestCtx, []byte(key))
					requestCancel()
					if err != nil {
						fmt.Printf("locate failed: %v\n", err)
						continue
					}
					fmt.Printf("shard %d @%s\n", loc.ShardId, loc.ServerAddr)
				} else if t == "quit" || t == "exit" || t == "q" {
					break
				} else {
					fmt.Printf("cmd '%s' not supported\n", t)
					continue
				}
			}
		}
	)

	p := prompt.New(
		executor,
		completer,
		prompt.OptionPrefix("> "),
		prompt.OptionTitle("featherpd client"),
	)
	p.Run()
}
