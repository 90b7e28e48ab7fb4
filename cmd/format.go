package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lapwatch/lapwatch/cmd/common"
	"github.com/lapwatch/lapwatch/pkg/stopwatch"
	"github.com/urfave/cli"
)

var errNoMillis = errors.New("no millisecond values given")

func format(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if !ctx.Args().Present() {
		return common.PrintErrWithCmdHelp(ctx, errNoMillis)
	}
	for _, arg := range ctx.Args() {
		ms, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			common.PrintRuntimeErr(ctx, "format", "parse", err)
			continue
		}
		fmt.Println(stopwatch.FormatMillis(ms))
	}
	return nil
}
