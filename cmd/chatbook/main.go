package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "chatbook",
		Usage: "Normalize CLI agent chat logs and bind them into an incremental ebook",
		Description: `
      _           _   _                 _
  ___| |__   __ _| |_| |__   ___   ___ | | __
 / __| '_ \ / _' | __| '_ \ / _ \ / _ \| |/ /
| (__| | | | (_| | |_| |_) | (_) | (_) |   <
 \___|_| |_|\__,_|\__|_.__/ \___/ \___/|_|\_\

 Every conversation, one growing book — only what changed gets rebound.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			convertCmd(),
			exportCmd(),
			showCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
