package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/frankli0324/go-rqprint"
)

type options struct {
	in       string
	part     string
	encoding string
	fallback string
}

func main() {
	var o options
	flag.StringVar(&o.in, "in", "-", "file holding the raw request, - for stdin")
	flag.StringVar(&o.part, "part", "all", "what to print: all, head or body")
	flag.StringVar(&o.encoding, "encoding", "utf-8", "WHATWG label of the encoding head lines are written in")
	flag.StringVar(&o.fallback, "fallback", "available", "body policy without Content-Length: available, eof or line")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if err := run(logger, o, os.Stdin, os.Stdout); err != nil {
		logger.Error().Err(err).Str("in", o.in).Msg("print failed")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger, o options, stdin io.Reader, stdout io.Writer) error {
	if o.part != "all" && o.part != "head" && o.part != "body" {
		return fmt.Errorf("unknown part %q", o.part)
	}
	enc, err := htmlindex.Get(o.encoding)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", o.encoding, err)
	}
	fallback, err := rqprint.ParsePolicy(o.fallback)
	if err != nil {
		return err
	}

	src := stdin
	if o.in != "-" {
		f, err := os.Open(o.in)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}
	req, err := rqprint.ReadRaw(src)
	if err != nil {
		return err
	}
	p := rqprint.New(req, rqprint.WithEncoding(enc), rqprint.WithFallback(fallback))

	if logger.GetLevel() <= zerolog.DebugLevel {
		head, _ := req.Head()
		ev := logger.Debug().Int("lines", len(head))
		if pol, err := p.BodyPolicy(); err == nil {
			ev = ev.Str("policy", fmt.Sprint(pol))
		}
		ev.Msg("request head read")
	}

	out := bufio.NewWriter(stdout)
	switch o.part {
	case "head":
		return p.PrintHead(out)
	case "body":
		if err := p.PrintBody(out); err != nil {
			return err
		}
		return out.Flush()
	}
	return p.Print(out)
}
