package main

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"sigmadsp/emu"
	"sigmadsp/emu/rpc"
	"sigmadsp/hw"
	"sigmadsp/hw/hwio"
)

const version = "0.1.0"

func main() {
	cli := parseArgs(os.Args[1:])
	cfg := emu.LoadConfigOrDefault()

	if cfg.General.LogModules != "" {
		checkf(applyLogModules(cfg.General.LogModules), "bad log_modules in config")
	}

	switch cli.mode {
	case versionMode:
		fmt.Println("sigmadsp", version)
	case regsMode:
		printRegs()
	case serveMode:
		serve(cli, cfg)
	case runMode:
		run(cli)
	}
}

// run replays each trace script on its own device instance, all in parallel.
// Dump flags only make sense for a single script since there would be no way
// to tell the devices apart in the output.
func run(cli CLI) {
	wantDump := cli.Run.Regs != nil || cli.Run.Mem != nil
	if wantDump && len(cli.Run.Scripts) > 1 {
		fatalf("--regs and --mem require a single script")
	}

	emus := make([]*emu.Emu, len(cli.Run.Scripts))

	var g errgroup.Group
	for i, path := range cli.Run.Scripts {
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			script, err := emu.ParseScript(f, path)
			if err != nil {
				return err
			}

			emus[i] = emu.New()
			return emus[i].RunScript(script)
		})
	}
	checkf(g.Wait(), "replay failed")

	if !wantDump {
		return
	}

	dsp := emus[0].DSP
	if f := cli.Run.Regs; f != nil {
		checkf(dsp.DumpRegisters(f), "register dump failed")
		checkf(f.Close(), "register dump failed")
	}
	if f := cli.Run.Mem; f != nil {
		page := hw.ForceA
		if cli.Run.MemPage == "B" {
			page = hw.ForceB
		}
		checkf(dsp.DumpMemory(f, cli.Run.MemStart, cli.Run.MemCount, page), "memory dump failed")
		checkf(f.Close(), "memory dump failed")
	}
}

func serve(cli CLI, cfg emu.Config) {
	port := cli.Serve.Port
	if port == 0 {
		port = cfg.RPC.Port
	}

	srv, err := rpc.NewServer(port, emu.New())
	checkf(err, "cannot start rpc server")
	defer srv.Close()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	<-ch
}

func printRegs() {
	dsp := hw.NewDSP()
	dsp.Regs.Each(func(def *hw.RegDef, val uint16) {
		access := "rw"
		switch {
		case def.Synth:
			access = "ro*"
		case def.Flags&hwio.ReadOnlyFlag != 0:
			access = "ro"
		}
		fmt.Printf("%04X  %-20s %-3s reset=%04X\n", def.Addr, def.Name, access, def.Reset)
	})
}
