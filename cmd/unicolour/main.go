package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/kovidgoyal/unicolour"
	"github.com/kovidgoyal/unicolour/internal/server"
	"golang.org/x/term"
)

var _ = fmt.Print

const usage = `usage: unicolour [options] colour
       unicolour [options] space v1 v2 v3 [alpha]
       unicolour -serve :8080

colour is a hex value such as #FF8000 or an SVG colour name.

Options:
`

type options struct {
	config      string
	verbose     bool
	serve       string
	paletteTo   string
	steps       int
	space       string
	premultiply bool
}

func parse_colour(config *unicolour.Configuration, args []string) (*unicolour.Unicolour, error) {
	switch len(args) {
	case 1:
		if u, err := config.FromHex(args[0]); err == nil {
			return u, nil
		}
		return config.FromName(args[0])
	case 4, 5:
		space, err := unicolour.SpaceFromName(args[0])
		if err != nil {
			return nil, err
		}
		vals := []float64{0, 0, 0, 1}
		for i, a := range args[1:] {
			if vals[i], err = strconv.ParseFloat(a, 64); err != nil {
				return nil, fmt.Errorf("not a number: %q", a)
			}
		}
		return config.New(space, vals[0], vals[1], vals[2], vals[3])
	}
	return nil, fmt.Errorf("expected a colour or a space and 3 values, got %d arguments", len(args))
}

func swatch(u *unicolour.Unicolour) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ""
	}
	r, g, b := u.RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm      \x1b[0m ", r, g, b)
}

func print_colour(u *unicolour.Unicolour) {
	fmt.Printf("%s%s alpha %s\n", swatch(u), u.Hex(), u.Alpha())
	for _, s := range unicolour.Spaces() {
		r, _ := u.Get(s)
		fmt.Printf("  %-10s %s\n", s, r.Triplet)
	}
	c := u.CAM16Model()
	fmt.Printf("  CAM16      J=%.4g C=%.4g h=%.4g M=%.4g s=%.4g Q=%.4g H=%.4g\n", c.J, c.C, c.H, c.M, c.S, c.Q, c.Hq)
	fmt.Printf("  CCT        %s\n", u.Temperature())
	fmt.Printf("  luminance  %.4g\n", u.RelativeLuminance())
	if !u.IsInDisplayGamut() {
		fmt.Printf("  out of gamut, mapped to %s\n", u.MapToGamut().Hex())
	}
}

func print_palette(u *unicolour.Unicolour, opts options, config *unicolour.Configuration) error {
	to, err := parse_colour(config, []string{opts.paletteTo})
	if err != nil {
		return err
	}
	space, err := unicolour.SpaceFromName(opts.space)
	if err != nil {
		return err
	}
	p, err := u.Palette(to, space, opts.steps, opts.premultiply)
	if err != nil {
		return err
	}
	hexes := make([]string, len(p))
	for i, c := range p {
		hexes[i] = c.HexWithAlpha()
	}
	b, err := json.MarshalIndent(hexes, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Println(string(b))
	return err
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	var opts options
	flag.StringVar(&opts.config, "config", "", "YAML file with the RGB model, white point and viewing conditions")
	flag.BoolVar(&opts.verbose, "v", false, "log debug diagnostics to stderr")
	flag.StringVar(&opts.serve, "serve", "", "serve the HTTP API on this address instead")
	flag.StringVar(&opts.paletteTo, "palette", "", "print a palette from the colour to this colour as JSON")
	flag.IntVar(&opts.steps, "steps", 5, "number of palette colours")
	flag.StringVar(&opts.space, "space", "Oklab", "space to interpolate palettes in")
	flag.BoolVar(&opts.premultiply, "premultiply", false, "premultiply alpha when interpolating")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	unicolour.SetLogger(logger)

	config := unicolour.DefaultConfiguration
	if opts.config != "" {
		f, ferr := os.Open(opts.config)
		if ferr != nil {
			err = ferr
			return
		}
		config, err = unicolour.LoadConfiguration(f)
		f.Close()
		if err != nil {
			return
		}
	}
	if opts.serve != "" {
		slog.Info("serving colour API", "addr", opts.serve)
		err = server.ListenAndServe(opts.serve, config)
		return
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	u, err := parse_colour(config, flag.Args())
	if err != nil {
		return
	}
	if opts.paletteTo != "" {
		err = print_palette(u, opts, config)
		return
	}
	print_colour(u)
}
