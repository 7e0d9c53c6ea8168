package main

import (
	"fmt"

	"github.com/rateyu/chat-txt2pdf/core"
	"github.com/rateyu/chat-txt2pdf/redact"
	"github.com/rateyu/chat-txt2pdf/render"
	htmlrender "github.com/rateyu/chat-txt2pdf/render/html"
	jsonrender "github.com/rateyu/chat-txt2pdf/render/json"
	pdfrender "github.com/rateyu/chat-txt2pdf/render/pdf"
	"github.com/urfave/cli/v3"
)

// newRenderer builds the book renderer for the requested output format and
// returns it with the matching file extension.
func newRenderer(format, fontPath string) (render.Renderer, string, error) {
	switch format {
	case "pdf":
		r := pdfrender.New()
		r.FontPath = fontPath
		return r, ".pdf", nil
	case "html":
		return htmlrender.New(), ".html", nil
	case "json":
		return jsonrender.New(), ".json", nil
	default:
		return nil, "", fmt.Errorf("unknown output format %q", format)
	}
}

// newRedactor builds the redaction transformer from the --redact rule
// list. An empty list means no redaction.
func newRedactor(cmd *cli.Command) ([]core.Transformer, error) {
	rules := cmd.StringSlice("redact")
	if len(rules) == 0 {
		return nil, nil
	}

	cfg := redact.Config{}
	for _, r := range rules {
		switch r {
		case "secrets":
			cfg.Secrets = true
		case "pii":
			cfg.PII = true
		default:
			return nil, fmt.Errorf("unknown redaction rule %q", r)
		}
	}
	return []core.Transformer{redact.New(cfg)}, nil
}
