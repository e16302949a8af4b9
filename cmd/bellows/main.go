package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/sylvainf/bellows/internal/cli"
	"github.com/sylvainf/bellows/pkg/buildinfo"
)

func main() {
	c := cli.New(os.Stderr, cli.LogInfo)

	if err := fang.Execute(
		context.Background(),
		c.RootCommand(),
		fang.WithVersion(buildinfo.Version),
		fang.WithCommit(buildinfo.Commit),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}
