// Command paintd runs a paint session.
//
// With -addr it serves the session over a websocket (see package
// internal/remote) until interrupted. With -replay it applies a recorded
// event script first. With -output it writes the committed artwork as PNG
// or PDF when it finishes.
//
//	paintd -addr :8080 -mdns -output board.png
//	paintd -replay strokes.jsonl -output strokes.pdf
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/internal/discovery"
	"github.com/gogpu/paint/internal/pdfexport"
	"github.com/gogpu/paint/internal/remote"
)

type config struct {
	width, height int
	addr          string
	mdns          bool
	name          string
	replay        string
	output        string
	strokeWidth   float64
	color         string
	fonts         fontFlags
	fontFamily    string
	shaper        string
	verbose       bool
}

// fontFlags collects repeated -font family=path flags.
type fontFlags []string

func (f *fontFlags) String() string { return strings.Join(*f, ",") }

func (f *fontFlags) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("want family=path, got %q", v)
	}
	*f = append(*f, v)
	return nil
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", paint.DefaultWidth, "canvas width")
	flag.IntVar(&cfg.height, "height", paint.DefaultHeight, "canvas height")
	flag.StringVar(&cfg.addr, "addr", "", "serve the session on this address (e.g. :8080)")
	flag.BoolVar(&cfg.mdns, "mdns", false, "advertise the server with mDNS")
	flag.StringVar(&cfg.name, "name", "", "mDNS instance name (default: host name)")
	flag.StringVar(&cfg.replay, "replay", "", "apply a newline-delimited JSON event script")
	flag.StringVar(&cfg.output, "output", "", "write the artwork on exit (.png or .pdf)")
	flag.Float64Var(&cfg.strokeWidth, "stroke-width", paint.DefaultStrokeWidth, "initial stroke width")
	flag.StringVar(&cfg.color, "color", "black", "initial stroke colour (name or #rrggbb)")
	flag.Var(&cfg.fonts, "font", "register a font family (family=path.ttf, repeatable)")
	flag.StringVar(&cfg.fontFamily, "font-family", paint.DefaultFontFamily, "text tool font family")
	flag.StringVar(&cfg.shaper, "shaper", "builtin", "text shaper: builtin or gotext")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	paint.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("paintd failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *slog.Logger) error {
	switch cfg.shaper {
	case "builtin":
	case "gotext":
		text.SetShaper(text.NewGoTextShaper())
	default:
		return fmt.Errorf("unknown shaper %q", cfg.shaper)
	}

	fonts := paint.NewFontBook()
	for _, f := range cfg.fonts {
		family, path, _ := strings.Cut(f, "=")
		if err := fonts.RegisterFile(family, path); err != nil {
			return err
		}
	}
	if !fonts.Has(cfg.fontFamily) {
		return fmt.Errorf("%w: %q (have %s)", paint.ErrUnknownFont,
			cfg.fontFamily, strings.Join(fonts.Families(), ", "))
	}

	color, err := paint.ParseColor(cfg.color)
	if err != nil {
		return err
	}
	ctrl, err := paint.NewController(cfg.width, cfg.height,
		paint.WithStrokeWidth(cfg.strokeWidth),
		paint.WithStrokeColor(color),
		paint.WithFontBook(fonts),
		paint.WithFontFamily(cfg.fontFamily))
	if err != nil {
		return err
	}

	if cfg.replay != "" {
		if err := replay(ctrl, cfg.replay, logger); err != nil {
			return err
		}
	}

	if cfg.addr != "" {
		if err := serve(ctx, ctrl, cfg, logger); err != nil {
			return err
		}
	}

	if cfg.output != "" {
		return export(ctrl, cfg.output, logger)
	}
	return nil
}

func replay(ctrl *paint.Controller, path string, logger *slog.Logger) error {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := remote.Replay(ctrl, f, logger)
	if err != nil {
		return err
	}
	logger.Info("replayed script", slog.String("path", path), slog.Int("events", n))
	return nil
}

// serve blocks until ctx is cancelled. The controller is owned by the
// server while it runs and handed back when serve returns.
func serve(ctx context.Context, ctrl *paint.Controller, cfg config, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", cfg.addr)
	if err != nil {
		return err
	}

	if cfg.mdns {
		port := ln.Addr().(*net.TCPAddr).Port
		adv, err := discovery.Advertise(cfg.name, port, fmt.Sprintf("size=%dx%d", cfg.width, cfg.height))
		if err != nil {
			_ = ln.Close()
			return err
		}
		defer func() { _ = adv.Shutdown() }()
		logger.Info("advertising", slog.String("service", discovery.ServiceType), slog.Int("port", port))
	}

	srv := remote.NewServer(ctrl, remote.WithLogger(logger))
	if err := srv.Serve(ctx, ln); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func export(ctrl *paint.Controller, path string, logger *slog.Logger) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		img, err := ctrl.Image()
		if err != nil {
			return err
		}
		if err := pdfexport.WriteFile(path, img, pdfexport.WithTitle(filepath.Base(path))); err != nil {
			return err
		}
	case ".png":
		f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return err
		}
		if err := ctrl.EncodePNG(f); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q (want .png or .pdf)", filepath.Ext(path))
	}
	logger.Info("export written", slog.String("path", path))
	return nil
}
