package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"sigmadsp/emu/log"
)

type mode byte

const (
	runMode     mode = iota // Replay trace scripts
	serveMode               // Expose a device over RPC
	regsMode                // Print the register table
	versionMode             // Show version
)

type (
	CLI struct {
		Run     Run     `cmd:"" help:"Replay bus trace scripts on simulated devices. (default command)" default:"true"`
		Serve   Serve   `cmd:"" help:"Run a device and expose it over RPC."`
		Regs    Regs    `cmd:"" help:"Print the control register table."`
		Version Version `cmd:"" help:"Show sigmadsp version."`

		Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`

		mode mode
	}

	Run struct {
		Scripts []string `arg:"" name:"script" help:"${script_help}" type:"existingfile"`

		Regs     *outfile `name:"regs" help:"Write the register dump after replay." placeholder:"FILE|stdout|stderr"`
		Mem      *outfile `name:"mem" help:"Write a raw memory dump after replay." placeholder:"FILE|stdout|stderr"`
		MemStart uint16   `name:"mem-start" help:"First word address of the memory dump." default:"0"`
		MemCount int      `name:"mem-count" help:"Number of words to dump." default:"64"`
		MemPage  string   `name:"mem-page" help:"Page to dump." enum:"A,B" default:"A"`
	}

	Serve struct {
		Port int `name:"port" help:"TCP port to listen on. (0: use config)" default:"0"`
	}

	Regs struct{}

	Version struct{}
)

var vars = kong.Vars{
	"script_help": "Trace script(s) to replay, each on its own device instance.",
	"log_help":    "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("sigmadsp"),
		kong.Description("Serial-bus audio DSP simulator."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch ctx.Command() {
	case "serve":
		cfg.mode = serveMode
	case "regs":
		cfg.mode = regsMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = runMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "run") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	return applyLogModules(tok.Value.(string))
}

// applyLogModules enables debug logging for a comma-separated list of module
// names; "all" and "no" behave as documented in the CLI help.
func applyLogModules(spec string) error {
	nolog := false
	allLogs := false
	var mask log.ModuleMask

	for _, v := range strings.Split(spec, ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			mask |= mod.Mask()
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if mask != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		mask = log.ModuleMaskAll
	}

	log.EnableDebugModules(mask)
	return nil
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
