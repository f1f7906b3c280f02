package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	snep "github.com/snep-format/go-snep"
	"github.com/snep-format/go-snep/encode"
	"github.com/snep-format/go-snep/fileio"
	"github.com/snep-format/go-snep/ir"
	"github.com/snep-format/go-snep/parse"
	"github.com/snep-format/go-snep/snippet"
	"github.com/snep-format/go-snep/syntax"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render directives with color'"`

	Syn *syntax.Syntax

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) synOpt(cc *cli.Context, a string) (any, error) {
	s, err := syntax.ParseSyntax(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Syn = s
	return s, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
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

func (cfg *MainConfig) encOpts(w io.Writer, syn *syntax.Syntax) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeSyntax(syn)}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// loadDoc parses one file argument ("-" means stdin) and returns the
// tree, the raw text, and the syntax used.
func (cfg *MainConfig) loadDoc(arg string) (*ir.Node, string, *syntax.Syntax, error) {
	var text, src string
	if arg == "-" {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", nil, err
		}
		text, src = string(d), "<stdin>"
	} else {
		var err error
		text, err = fileio.Load(arg)
		if err != nil {
			return nil, "", nil, err
		}
		src = arg
	}
	syn := cfg.Syn
	if syn == nil {
		syn = snep.GuessSyntax(src, text)
	}
	doc, err := parse.Parse([]byte(text), parse.Source(src), parse.Syntax(syn))
	if err != nil {
		return nil, "", nil, err
	}
	return doc, text, syn, nil
}

// loadLibrary collects the snippets of all file arguments into one
// library.
func (cfg *MainConfig) loadLibrary(args []string) (*snippet.Library, error) {
	lib := snippet.NewLibrary()
	for _, arg := range args {
		doc, _, _, err := cfg.loadDoc(arg)
		if err != nil {
			return nil, err
		}
		if err := lib.Add(doc); err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
	}
	return lib, nil
}

type RenderConfig struct {
	*MainConfig
	Check bool `cli:"name=check desc='report files whose text is not canonical'"`

	Render *cli.Command
}

type JSONConfig struct {
	*MainConfig

	JSON *cli.Command
}

type ListConfig struct {
	*MainConfig
	Long bool `cli:"name=l desc='also list requirements and modules'"`

	List *cli.Command
}

type OrderConfig struct {
	*MainConfig

	Order *cli.Command
}

type target struct {
	out   string
	snips []string
}

type BuildConfig struct {
	*MainConfig

	Targets []target

	Build *cli.Command
}

type GuessConfig struct {
	*MainConfig

	Guess *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Interactive bool `cli:"name=i desc='resolve conflicts in an interactive shell'"`

	Base string
	Dest string

	Merge *cli.Command
}
