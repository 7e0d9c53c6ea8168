package main

import (
	"context"
	"os"

	"github.com/rateyu/chat-txt2pdf/reader"
	"github.com/rateyu/chat-txt2pdf/render/terminal"
	"github.com/urfave/cli/v3"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Preview one chat log in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to a .jsonl or .json chat log",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			messages, err := reader.ReadFile(cmd.String("file"))
			if err != nil {
				return err
			}
			return terminal.New().Render(os.Stdout, messages)
		},
	}
}
