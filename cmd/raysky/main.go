// raysky - sky gradient ray caster
// Casts one ray per pixel through a pinhole camera and shades it with a
// white to sky-blue gradient. Writes a plain PPM by default.
//
// Output format follows the -o extension: .ppm (streamed), .png, .bmp, .tiff.
// With -preview the image is also shown in the terminal until a key is
// pressed.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/raysky/pkg/math3d"
	"github.com/taigrr/raysky/pkg/render"
)

var (
	outputPath = flag.String("o", "image.ppm", "Output image path (.ppm, .png, .bmp, .tiff)")
	width      = flag.Int("width", render.DefaultWidth, "Image width in pixels (height follows the 16:9 aspect ratio)")
	preview    = flag.Bool("preview", false, "Show the rendered image in the terminal")
	quiet      = flag.Bool("quiet", false, "Suppress scanline progress")
	verbose    = flag.Bool("v", false, "Enable debug logging")
)

type options struct {
	output  string
	config  render.Config
	preview bool
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "raysky - sky gradient ray caster\n\n")
		fmt.Fprintf(os.Stderr, "Usage: raysky [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if *verbose {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := render.DefaultConfig()
	cfg.Width = *width

	var progress io.Writer = os.Stderr
	if *quiet {
		progress = nil
	}

	opts := options{output: *outputPath, config: cfg, preview: *preview}
	if err := run(opts, progress); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, progress io.Writer) error {
	format, err := render.FormatForPath(opts.output)
	if err != nil {
		return err
	}

	renderer, err := render.NewRenderer(opts.config)
	if err != nil {
		return err
	}
	renderer.Progress = progress

	// PPM output streams straight to the file. Everything else, and the
	// preview, needs the whole image in memory first.
	var fb *render.Framebuffer
	if format != render.FormatPPM || opts.preview {
		fb = render.NewFramebuffer(opts.config.Width, opts.config.Height())
	}

	if format == render.FormatPPM {
		if err := writePPM(renderer, opts.output, fb); err != nil {
			return err
		}
	} else {
		if err := renderer.Render(fb); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if err := fb.Save(opts.output); err != nil {
			return fmt.Errorf("save image: %w", err)
		}
	}
	render.Logger().Info("wrote image", "path", opts.output, "format", format)

	if opts.preview {
		return showPreview(fb)
	}
	return nil
}

// writePPM streams the render to path, also filling fb when it is non-nil.
func writePPM(renderer *render.Renderer, path string, fb *render.Framebuffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	var sink render.PixelSink = render.NewPPMWriter(f)
	if fb != nil {
		sink = teeSink{sink, fb}
	}
	if err := renderer.Render(sink); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// teeSink forwards every call to both sinks.
type teeSink [2]render.PixelSink

func (t teeSink) Begin(w, h int) error {
	for _, s := range t {
		if err := s.Begin(w, h); err != nil {
			return err
		}
	}
	return nil
}

func (t teeSink) WritePixel(x, y int, c math3d.Color) error {
	for _, s := range t {
		if err := s.WritePixel(x, y, c); err != nil {
			return err
		}
	}
	return nil
}

func (t teeSink) End() error {
	for _, s := range t {
		if err := s.End(); err != nil {
			return err
		}
	}
	return nil
}

// previewScreen is a terminal that can be drawn on cell by cell.
type previewScreen interface {
	uv.Screen
	Display() error
}

// showPreview draws fb on the alternate screen and waits for a key press
// or a termination signal.
func showPreview(fb *render.Framebuffer) error {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	scr, ok := any(term).(previewScreen)
	if !ok {
		return fmt.Errorf("terminal does not support cell drawing")
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	fb.Resample(cols, rows*2).Draw(scr, uv.Rectangle(image.Rect(0, 0, cols, rows)))
	if err := scr.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keyPressed := make(chan struct{})
	go func() {
		for ev := range term.Events() {
			if _, ok := ev.(uv.KeyPressEvent); ok {
				close(keyPressed)
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
	case <-keyPressed:
	}
	return nil
}
