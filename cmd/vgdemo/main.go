// Command vgdemo renders a YAML scene of splines and polygons to a PNG.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/vg"
)

func main() {
	var (
		width     = flag.Int("width", 800, "image width")
		height    = flag.Int("height", 600, "image height")
		output    = flag.String("output", "demo.png", "output file")
		scenePath = flag.String("scene", "", "scene YAML file (default: built-in demo)")
		logLevel  = flag.String("log-level", "info", "log level: debug, info, warn, error")
		logFile   = flag.String("log-file", "", "also write logs to this file, rotated")
	)
	flag.Parse()

	logger := newLogger(*logLevel, *logFile)
	vg.SetLogger(logger)

	if err := run(*scenePath, *output, *width, *height); err != nil {
		logger.Error("vgdemo failed", "err", err)
		os.Exit(1)
	}
}

func run(scenePath, output string, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("image size %dx%d: %w", w, h, vg.ErrInvalidParameter)
	}

	var in io.Reader = bytes.NewReader(demoScene)
	if scenePath != "" {
		f, err := os.Open(scenePath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	sc, err := loadScene(in)
	if err != nil {
		return err
	}

	img := render(sc, w, h)

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	vg.Logger().Info("demo saved", "output", output, "width", w, "height", h, "shapes", len(sc.Shapes))
	return nil
}

// newLogger writes text logs to stderr and, when file is set, also to a
// rotating log file.
func newLogger(level, file string) *slog.Logger {
	var w io.Writer = os.Stderr
	if strings.TrimSpace(file) != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		})
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
