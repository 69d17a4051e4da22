package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/docopt/docopt-go"
	"github.com/saintserge/jodconverter/internal/config"
	"github.com/saintserge/jodconverter/internal/logging"
	"github.com/saintserge/jodconverter/internal/officeurl"
	"github.com/saintserge/jodconverter/internal/server"
)

const OfficeURLVersion = "0.1.0"

const usage = `Office connection descriptors.

Build, parse and inspect the descriptors used to reach an office process
over its urp bridge. Nothing is dialed.

Usage:
    officeurl pipe <name> [--json]
    officeurl socket [--host=<host>] <port> [--json]
    officeurl parse <url> [--json]
    officeurl config <path> [--json]
    officeurl -h | --help
    officeurl --version

Options:
    -h --help        Show this screen.
    --version        Show version.
    --host=<host>    Office host [default: 127.0.0.1].
    --json           Print the descriptor as JSON.`

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "officeurl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}
	opts, err := parser.ParseArgs(usage, args, OfficeURLVersion)
	if err != nil {
		return err
	}

	d, err := descriptorFromOpts(opts)
	if err != nil {
		return err
	}
	logging.Debugf("officeurl descriptor=%q", d.String())

	asJSON, _ := opts.Bool("--json")
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(server.NewDescriptorView(d))
	}
	return printDescriptor(out, d)
}

func descriptorFromOpts(opts docopt.Opts) (officeurl.Descriptor, error) {
	if pipe, _ := opts.Bool("pipe"); pipe {
		name, _ := opts.String("<name>")
		return officeurl.ForPipe(name)
	}
	if socket, _ := opts.Bool("socket"); socket {
		host, _ := opts.String("--host")
		port, err := opts.Int("<port>")
		if err != nil {
			return officeurl.Descriptor{}, fmt.Errorf("port must be an integer: %w", err)
		}
		return officeurl.ForSocket(host, port)
	}
	if parse, _ := opts.Bool("parse"); parse {
		raw, _ := opts.String("<url>")
		return officeurl.Parse(raw)
	}
	if cfg, _ := opts.Bool("config"); cfg {
		path, _ := opts.String("<path>")
		office, err := config.LoadOfficeConfig(path)
		if err != nil {
			return officeurl.Descriptor{}, err
		}
		return office.Descriptor()
	}
	return officeurl.Descriptor{}, fmt.Errorf("no command given")
}

func printDescriptor(out io.Writer, d officeurl.Descriptor) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "url:\t%s\n", d.String())
	fmt.Fprintf(w, "connection:\t%s\n", d.ConnectionType())
	fmt.Fprintf(w, "connection parameters:\t%s\n", formatParams(d.ConnectionParams()))
	fmt.Fprintf(w, "protocol:\t%s\n", d.Protocol())
	fmt.Fprintf(w, "protocol parameters:\t%s\n", formatParams(d.ProtocolParams()))
	fmt.Fprintf(w, "object id:\t%s\n", d.ObjectID())
	if addr := d.Addr(); addr != nil {
		fmt.Fprintf(w, "address:\t%s %s\n", addr.Network(), addr.String())
	}
	return w.Flush()
}

// formatParams prints decoded values in written order.
func formatParams(params []officeurl.Param) string {
	if len(params) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("%s=%q", p.Key, p.Value))
	}
	return strings.Join(parts, " ")
}
