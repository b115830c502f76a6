package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/shiromc/midiconverter/internal/file"
	"github.com/shiromc/midiconverter/internal/processor"
)

var (
	c          = flag.String("c", "", "config file name (YAML)")
	i          = flag.String("i", "", "input file name (MIDI)")
	passphrase = flag.String("passphrase", "", "passphrase for .age encrypted input files")
)

func Main() error {
	if *i == "" {
		return fmt.Errorf("missing -i")
	}

	configFile := ""
	if *c != "" {
		configFile = filepath.Base(*c)
	}
	config, err := file.ReadConfig(os.DirFS(filepath.Dir(*c)), configFile)
	if err != nil {
		return fmt.Errorf("failed to read config: %v", err)
	}

	mid, err := file.ReadMIDI(*i, *passphrase)
	if err != nil {
		return err
	}

	events, err := processor.Stream(mid, config)
	if err != nil {
		return fmt.Errorf("failed to process: %v", err)
	}
	return processor.Dump(os.Stdout, events, config)
}

func main() {
	flag.Parse()
	err := Main()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
