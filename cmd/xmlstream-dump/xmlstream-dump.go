package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/xmlstream"
	"github.com/lestrrat-go/xmlstream/internal/cliutil"
	"github.com/lestrrat-go/xmlstream/sax"
)

type cmdopts struct {
	ChunkSize int  `long:"chunk-size"`
	Version   bool `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("xmlstream-dump: using xmlstream version %s\n", xmlstream.Version)
}

func showUsage() {
	fmt.Printf(`Usage : xmlstream-dump [options] XMLfiles ...
	Tokenize the XML files and print one line per event
	--chunk-size=N : feed the tokenizer N bytes at a time
	--version : display the version of the XML library used
`)
}

func newEventDumper(out io.Writer) *sax.SAX2 {
	s := sax.New()
	s.StartDocumentHandler = func(_ sax.Context) error {
		fmt.Fprintf(out, "SAX.StartDocument()\n")
		return nil
	}
	s.EndDocumentHandler = func(_ sax.Context) error {
		fmt.Fprintf(out, "SAX.EndDocument()\n")
		return nil
	}
	s.CharactersHandler = func(_ sax.Context, data []byte) error {
		fmt.Fprintf(out, "SAX.Characters(%s, %d)\n", data, len(data))
		return nil
	}
	s.CDataBlockHandler = func(_ sax.Context, data []byte) error {
		fmt.Fprintf(out, "SAX.CDataBlock(%s, %d)\n", data, len(data))
		return nil
	}
	s.CommentHandler = func(_ sax.Context, data []byte) error {
		fmt.Fprintf(out, "SAX.Comment(%s)\n", data)
		return nil
	}
	s.ProcessingInstructionHandler = func(_ sax.Context, data []byte) error {
		fmt.Fprintf(out, "SAX.ProcessingInstruction(%s)\n", data)
		return nil
	}
	s.StartElementHandler = func(_ sax.Context, elem sax.StartTag) error {
		fmt.Fprintf(out, "SAX.StartElement(%s, self-closing=%t, attrs=%q)\n", elem.Name(), elem.SelfClosing(), elem.RawAttributes())
		return nil
	}
	s.EndElementHandler = func(_ sax.Context, name string) error {
		fmt.Fprintf(out, "SAX.EndElement(%s)\n", name)
		return nil
	}
	return s
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	inputCh := make(chan io.Reader)
	errCh := make(chan error)
	switch {
	case len(args) > 0: // filename present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- fh
			}
		}()
	case !cliutil.IsTty(os.Stdin):
		go func() {
			defer close(inputCh)
			inputCh <- os.Stdin
		}()
	default:
		showUsage()
		return 1
	}

	var options []xmlstream.Option
	if opts.ChunkSize > 0 {
		options = append(options, xmlstream.WithChunkSize(opts.ChunkSize))
	}

	h := newEventDumper(os.Stdout)
	for in := range inputCh {
		if err := xmlstream.ParseReader(in, h, options...); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		if c, ok := in.(io.Closer); ok && in != os.Stdin {
			c.Close()
		}
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s", err)
		return 1
	default:
	}

	return 0
}
