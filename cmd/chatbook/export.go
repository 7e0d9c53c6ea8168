package main

import (
	"context"
	"fmt"

	"github.com/rateyu/chat-txt2pdf/export"
	"github.com/urfave/cli/v3"
)

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Bind new or changed artifacts into a dated ebook",
		Description: `Digests every artifact under --root and compares against the state of
the previous run. New and changed artifacts are bound into a fresh,
dated ebook; unchanged runs produce nothing. --full exports the whole
corpus whenever anything changed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Artifact root produced by convert",
				Value:   "chat-his",
			},
			&cli.StringFlag{
				Name:  "out-dir",
				Usage: "Directory where ebooks are written",
				Value: ".",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "Ebook filename prefix",
				Value: "chat_ebook",
			},
			&cli.StringFlag{
				Name:  "state",
				Usage: "State file tracking exported artifact digests",
				Value: "ebook_state.json",
			},
			&cli.BoolFlag{
				Name:  "full",
				Usage: "Export every artifact, not only new/changed ones",
			},
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: pdf, html, json",
				Value: "pdf",
			},
			&cli.StringFlag{
				Name:  "font",
				Usage: "TTF font with CJK coverage for the PDF backend",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "Override the ebook's question directory title",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			renderer, ext, err := newRenderer(cmd.String("o"), cmd.String("font"))
			if err != nil {
				return err
			}

			sum, err := export.Run(export.Config{
				Root:      cmd.String("root"),
				OutDir:    cmd.String("out-dir"),
				Prefix:    cmd.String("prefix"),
				StateFile: cmd.String("state"),
				Full:      cmd.Bool("full"),
				Title:     cmd.String("title"),
				Renderer:  renderer,
				Ext:       ext,
			})
			if err != nil {
				return err
			}

			if sum.Book == "" {
				fmt.Printf("no new or changed artifacts (%d scanned); nothing to export\n", sum.Scanned)
				return nil
			}
			fmt.Printf("exported %d of %d artifacts into %s\n", len(sum.Files), sum.Scanned, sum.Book)
			return nil
		},
	}
}
