// Command pathpick is a small path chooser showing how an immediate mode
// frontend drives imdialog: one Check per frame, Browse disabled while a
// dialog is open.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/leonwijng/imdialog/native"
)

func main() {
	// GUI unless the terminal frontend is explicitly requested
	useCLI := flag.Bool("cli", false, "Use the terminal frontend instead of the GUI")
	cfgPath := flag.String("config", "", "Path to a TOML config file")
	backend := flag.String("backend", "", fmt.Sprintf("Dialog backend %v", native.Names()))
	kind := flag.String("kind", "", "What Browse opens: file, files, dir or save")
	flag.Parse()

	cfg, err := LoadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *backend != "" {
		cfg.Dialog.Backend = *backend
	}
	if *kind != "" {
		if !validKind(*kind) {
			log.Fatalf("invalid -kind %q", *kind)
		}
		cfg.Dialog.Kind = *kind
	}

	logger, closer, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer closer.Close()

	factory, err := native.Lookup(cfg.Dialog.Backend)
	if err != nil {
		log.Fatalf("backend: %v", err)
	}
	logger.Info("starting", "backend", cfg.Dialog.Backend, "kind", cfg.Dialog.Kind, "start_dir", cfg.Dialog.StartDir)

	p := newPicker(cfg.Dialog, factory, logger)

	if *useCLI {
		err = RunTUI(cfg.UI, p)
	} else {
		err = RunGUI(cfg, p, logger)
	}
	if err != nil {
		logger.Error("frontend stopped", "err", err)
		closer.Close()
		os.Exit(1)
	}
}
