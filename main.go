package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/shiromc/midiconverter/internal/file"
	"github.com/shiromc/midiconverter/internal/version"
)

var (
	c           = flag.String("c", "", "config file name (YAML); defaults are used if empty")
	o           = flag.String("o", "", "output file name; - for stdout; defaults to the input file stem")
	passphrase  = flag.String("passphrase", "", "passphrase for .age encrypted input files")
	showVersion = flag.Bool("version", false, "print the version and exit")
	title       string
)

func init() {
	flag.StringVar(&title, "t", "", "title of the song (required)")
	flag.StringVar(&title, "title", "", "title of the song (required)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] MIDI_FILE -t TITLE\n", os.Args[0])
		flag.PrintDefaults()
	}
}

// parseArgs accepts flags both before and after the positional input file.
func parseArgs(args []string) (string, error) {
	err := flag.CommandLine.Parse(args)
	if err != nil {
		return "", err
	}
	if flag.NArg() == 0 {
		return "", fmt.Errorf("missing MIDI_FILE argument")
	}
	in := flag.Arg(0)
	err = flag.CommandLine.Parse(flag.Args()[1:])
	if err != nil {
		return "", err
	}
	if flag.NArg() != 0 {
		return "", fmt.Errorf("unexpected arguments: %v", flag.Args())
	}
	if title == "" {
		return "", fmt.Errorf("missing required -t/--title")
	}
	return in, nil
}

func Main(in string) error {
	configFile := ""
	if *c != "" {
		configFile = filepath.Base(*c)
	}
	config, err := file.ReadConfig(os.DirFS(filepath.Dir(*c)), configFile)
	if err != nil {
		return fmt.Errorf("failed to read config: %v", err)
	}

	if *o == "" {
		*o = file.OutputName(in, config.Format)
	}
	if *o != "-" {
		return file.Convert(in, *o, *passphrase, title, config)
	}

	song, err := file.Process(in, *passphrase, title, config)
	if err != nil {
		return err
	}
	pretty := file.Pretty(config) || term.IsTerminal(int(os.Stdout.Fd()))
	return song.Encode(os.Stdout, config.Format, pretty)
}

func main() {
	in, err := parseArgs(os.Args[1:])
	// -version may come after the input file, so check it once all flags are parsed.
	if *showVersion {
		fmt.Println(version.Version())
		return
	}
	if err != nil {
		flag.Usage()
		log.Println(err)
		os.Exit(1)
	}
	err = Main(in)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
