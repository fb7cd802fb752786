// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jfeed"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/tailscale/hujson"
	"github.com/tidwall/pretty"
)

// Config carries the command options.
type Config struct {
	Compact bool `cli:"name=c aliases=compact desc='render each value on one line'"`
	Color   bool `cli:"name=color desc='colorize output (default on a terminal)'"`
	YAML    bool `cli:"name=y aliases=yaml desc='render values as yaml documents'"`
	Human   bool `cli:"name=hu aliases=hujson desc='allow comments and trailing commas in input'"`
	Keep    bool `cli:"name=k aliases=keep-going desc='keep decoding after a syntax error'"`
	Check   bool `cli:"name=q aliases=check desc='check input only, print nothing'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})
	return cli.NewCommandAt(&cfg.Main, "jfeed").
		WithSynopsis("jfeed [opts] [file ...]").
		WithDescription("jfeed reads JSON values byte by byte and reprints each complete value.\n" +
			"With no files, or with the file -, it reads standard input.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func (cfg *Config) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.YAML && cfg.Compact {
		return fmt.Errorf("%w: -yaml and -compact are mutually exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var nerr int
	for _, name := range args {
		n, err := processFile(cfg, cc, name)
		nerr += n
		if err != nil {
			return err
		}
	}
	if nerr > 0 {
		return fmt.Errorf("%d syntax errors", nerr)
	}
	return nil
}

func processFile(cfg *Config, cc *cli.Context, name string) (int, error) {
	if name == "-" {
		return process(cfg, cc.Out, cc.In, "stdin")
	}
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return process(cfg, cc.Out, f, name)
}

// process decodes every value in r and writes the rendered results to w,
// reporting the number of syntax errors encountered and any hard failure.
func process(cfg *Config, w io.Writer, r io.Reader, name string) (int, error) {
	if cfg.Human {
		data, err := io.ReadAll(r)
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", name, err)
		}
		std, err := hujson.Standardize(data)
		if err != nil {
			return 0, fmt.Errorf("standardize %s: %w", name, err)
		}
		r = bytes.NewReader(std)
	}

	d := jfeed.NewDecoder(r)
	var nerr int
	for {
		node, err := d.Decode()
		var serr *jfeed.SyntaxError
		switch {
		case err == io.EOF:
			return nerr, nil
		case err == io.ErrUnexpectedEOF:
			nerr++
			reportError(cfg, name, err)
			return nerr, nil // nothing decodable remains
		case errors.As(err, &serr):
			nerr++
			reportError(cfg, name, err)
			if cfg.Keep {
				continue
			}
			return nerr, nil
		case err != nil:
			return nerr, fmt.Errorf("read %s: %w", name, err)
		}
		if !cfg.Check {
			if err := writeValue(cfg, w, node); err != nil {
				node.Release()
				return nerr, err
			}
		}
		node.Release()
	}
}

func writeValue(cfg *Config, w io.Writer, node *jfeed.Node) error {
	if cfg.YAML {
		text, err := yaml.Marshal(node.Interface())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "---\n%s", text)
		return err
	}
	text := []byte(node.JSON())
	if !cfg.Compact {
		text = pretty.Pretty(text)
	} else {
		text = append(text, '\n')
	}
	if cfg.colorEnabled(w) {
		text = pretty.Color(text, nil)
	}
	_, err := w.Write(text)
	return err
}

func reportError(cfg *Config, name string, err error) {
	msg := fmt.Sprintf("%s: %v", name, err)
	if cfg.colorEnabled(os.Stderr) {
		msg = color.New(color.FgRed).Sprint(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}

// colorEnabled reports whether output to w should be colorized: yes when
// -color was set, no when it was explicitly cleared, and otherwise only
// when w is a terminal.
func (cfg *Config) colorEnabled(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
