// Command stickloop reads a set of sticks and prints who wins: the loop the
// sticks enclose or the circle made of the wood left over.
//
// Usage:
//
//	stickloop [judge] [flags] [FILE]   read sticks from FILE or stdin
//	stickloop demo [flags] NAME        judge a built-in stick set
//
// The text format is a count followed by that many "x1 y1 x2 y2" rows.
// Files ending in .svg are read as SVG and every <line> is a stick.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/stickloop/builder"
	"github.com/katalvlaran/stickloop/config"
	"github.com/katalvlaran/stickloop/decision"
	"github.com/katalvlaran/stickloop/geom"
	"github.com/katalvlaran/stickloop/input"
	"github.com/katalvlaran/stickloop/judge"
	"github.com/katalvlaran/stickloop/render"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var demos = []string{"square", "triangle", "cross", "grid", "hexagon", "random"}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type flags struct {
	config  *string
	format  *string
	workers *int
	png     *string
	imgcat  *bool
	color   *bool

	verbose, debug, quiet *bool

	file *string

	demo      *string
	size      *float64
	overshoot *float64
	seed      *int64
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := kingpin.New("stickloop", "Decide whether a set of sticks encloses a loop larger than the circle built from the leftover wood.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	terminated := -1
	app.Terminate(func(code int) {
		if terminated < 0 {
			terminated = code
		}
	})

	var f flags
	f.config = app.Flag("config", "TOML settings file.").Short('c').PlaceHolder("FILE").String()
	f.workers = app.Flag("workers", "Goroutines for the intersection pass; 0 is one per CPU, -1 keeps the config value.").Short('w').Default("-1").Int()
	f.png = app.Flag("png", "Write a picture of the sticks and the loop.").PlaceHolder("FILE").String()
	f.imgcat = app.Flag("imgcat", "Show the --png picture inline in the terminal.").Bool()
	f.color = app.Flag("color", "Colorize the verdict.").Default("true").Bool()
	f.verbose = app.Flag("verbose", "Log stage transitions.").Short('v').Bool()
	f.debug = app.Flag("vv", "Log everything, including each vertex the search enters.").Bool()
	f.quiet = app.Flag("quiet", "Log errors only.").Short('q').Bool()

	judgeCmd := app.Command("judge", "Judge sticks read from a file or stdin.").Default()
	f.format = judgeCmd.Flag("format", "Input format: auto, text or svg.").Short('f').Default("auto").Enum("auto", "text", "txt", "svg")
	f.file = judgeCmd.Arg("file", "Input file; stdin when omitted.").String()

	demoCmd := app.Command("demo", "Judge a built-in stick set.")
	f.demo = demoCmd.Arg("name", "One of square, triangle, cross, grid, hexagon, random.").Required().Enum(demos...)
	f.size = demoCmd.Flag("size", "Side, leg or radius of the shape.").Default("4").Float64()
	f.overshoot = demoCmd.Flag("overshoot", "How far every stick runs past its corners.").Default("0").Float64()
	f.seed = demoCmd.Flag("seed", "Seed for the random demo.").Default("1").Int64()

	cmd, err := app.Parse(args)
	if terminated >= 0 {
		return terminated
	}
	if err != nil {
		fmt.Fprintf(stderr, "stickloop: %v\n", err)
		return exitUsage
	}

	cfg := config.Default()
	if *f.config != "" {
		if cfg, err = config.Load(*f.config); err != nil {
			fmt.Fprintf(stderr, "stickloop: %v\n", err)
			return exitError
		}
	}
	lvl, _ := cfg.Log.SlogLevel()
	if l, ok := levelFromFlags(*f.debug, *f.verbose, *f.quiet); ok {
		lvl = l
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))
	k := cfg.Kernel()

	var sticks []geom.Stick
	switch cmd {
	case demoCmd.FullCommand():
		sticks, err = demoSticks(k, *f.demo, *f.size, *f.overshoot, *f.seed)
	default:
		sticks, err = readSticks(k, *f.file, *f.format, stdin)
	}
	if err != nil {
		log.Error("reading sticks", "err", err)
		return exitError
	}

	workers := cfg.Workers
	if *f.workers >= 0 {
		workers = *f.workers
	}
	opts := []judge.Option{
		judge.WithKernel(k),
		judge.WithWorkers(workers),
		judge.WithLogger(log),
	}
	if *f.debug {
		opts = append(opts, judge.WithDebugNames())
	}
	res, err := judge.Run(ctx, sticks, opts...)
	if err != nil {
		log.Error("judging", "err", err)
		return exitError
	}

	au := aurora.NewAurora(*f.color)
	fmt.Fprintln(stdout, paint(au, res.Verdict, res.Label(cfg.VerdictLabels())))

	if *f.png != "" {
		ro := render.Options{
			Width:     cfg.Render.Width,
			Height:    cfg.Render.Height,
			Padding:   cfg.Render.Padding,
			LineWidth: cfg.Render.LineWidth,
		}
		if err := render.SavePNG(*f.png, render.SceneOf(sticks, res), ro); err != nil {
			log.Error("rendering", "err", err)
			return exitError
		}
		log.Info("picture written", "path", *f.png)
		if *f.imgcat {
			if out, ok := stdout.(*os.File); ok {
				render.Preview(*f.png, out)
			} else {
				log.Warn("imgcat needs a terminal")
			}
		}
	}

	return exitOK
}

// levelFromFlags maps the verbosity flags to a level; the most verbose one
// wins. ok is false when none is set.
func levelFromFlags(vv, v, q bool) (lvl slog.Level, ok bool) {
	switch {
	case vv:
		return slog.LevelDebug, true
	case v:
		return slog.LevelInfo, true
	case q:
		return slog.LevelError, true
	}

	return slog.LevelWarn, false
}

func readSticks(k geom.Kernel, path, format string, stdin io.Reader) ([]geom.Stick, error) {
	r := stdin
	if path != "" && path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		r = fh
	}

	f := input.FormatText
	if format == "auto" {
		f = input.FormatOf(path)
	} else {
		var err error
		if f, err = input.ParseFormat(format); err != nil {
			return nil, err
		}
	}

	return input.Read(r, f, k)
}

func demoSticks(k geom.Kernel, name string, size, overshoot float64, seed int64) ([]geom.Stick, error) {
	if overshoot < 0 || math.IsNaN(overshoot) || math.IsInf(overshoot, 0) {
		return nil, fmt.Errorf("demo: overshoot %v", overshoot)
	}
	bopts := []builder.BuilderOption{builder.WithOvershoot(overshoot), builder.WithSeed(seed)}

	var c builder.Constructor
	switch name {
	case "square":
		c = builder.Square(size)
	case "triangle":
		c = builder.Triangle(size)
	case "cross":
		c = builder.Cross(size)
	case "grid":
		c = builder.Grid(2, 2, size)
	case "hexagon":
		c = builder.RegularPolygon(6, size)
	case "random":
		c = builder.RandomSticks(8, int(size))
	default:
		return nil, fmt.Errorf("demo: unknown shape %q", name)
	}

	return builder.BuildSticks(k, bopts, c)
}

func paint(au aurora.Aurora, v decision.Verdict, label string) aurora.Value {
	switch v {
	case decision.CycleWins:
		return au.Green(label)
	case decision.ReferenceWins:
		return au.Yellow(label)
	default:
		return au.Red(label)
	}
}
