package cmd

import (
	"github.com/ritobanrc/firework/log"
	"github.com/urfave/cli"
)

var logger = log.New("firework")

// setupLogging raises verbosity for the -v and -vv global flags; -vv
// wins when both are set.
func setupLogging(ctx *cli.Context) {
	switch {
	case ctx.GlobalBool("vv"):
		log.SetLevel(log.Debug)
	case ctx.GlobalBool("v"):
		log.SetLevel(log.Info)
	}
}
