package main

import (
	"context"
	"fmt"

	"github.com/rateyu/chat-txt2pdf/convert"
	"github.com/urfave/cli/v3"
)

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "Normalize chat logs into text artifacts",
		Description: `Walks each --source directory, parses every .jsonl/.json chat log it
finds (Claude, Codex, and Gemini style schemas are recognized), and
writes one normalized .txt artifact per log under --output, headed by
a Question Index of the user's turns.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "source",
				Aliases:  []string{"s"},
				Usage:    "Log directory to scan (repeatable, e.g. ~/.codex ~/.claude ~/.gemini)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Artifact root directory",
				Value: "chat-his",
			},
			&cli.StringSliceFlag{
				Name:  "redact",
				Usage: "Redaction rules to apply before writing. Example: --redact=secrets,pii",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			transformers, err := newRedactor(cmd)
			if err != nil {
				return err
			}

			sum, err := convert.Run(convert.Config{
				Sources:      cmd.StringSlice("source"),
				Output:       cmd.String("output"),
				Transformers: transformers,
			})
			if err != nil {
				return err
			}

			fmt.Printf("converted %d logs (%d skipped) into %s\n",
				sum.Converted, sum.Skipped, cmd.String("output"))
			return nil
		},
	}
}
