// Command hunspell-check loads a Hunspell dictionary and reports which
// words on stdin it accepts, one verdict per line. It exists to exercise
// gohunspell end to end; the suggestion engine and interactive UX are out
// of scope. Grounded on danieldk-citar's cmd/citar config/error pattern.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/az-ai-labs/gohunspell"
)

// Config is the TOML configuration hunspell-check reads with -config.
// Fields default to defaultConfig's values when absent from the file.
type Config struct {
	// Dict is the dictionary base path (without .aff/.dic extension), or
	// the path to a .zip bundle when Zip is true.
	Dict string
	Zip  bool
}

func defaultConfig() *Config {
	return &Config{Dict: "dictionary"}
}

func mustParseConfig(filename string) *Config {
	f, err := os.Open(filename)
	exitIfError("cannot open configuration file", err)
	defer f.Close()

	config := defaultConfig()
	if _, err := toml.NewDecoder(f).Decode(config); err != nil {
		exitIfError("cannot parse configuration file", err)
	}
	return config
}

func exitIfError(prefix string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, err)
		os.Exit(1)
	}
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (see Config)")
	dictPath := flag.String("dict", "", "dictionary base path, overrides the config file")
	zipFlag := flag.Bool("zip", false, "treat -dict as a .zip bundle")
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		cfg = mustParseConfig(*configPath)
	}
	if *dictPath != "" {
		cfg.Dict = *dictPath
		cfg.Zip = *zipFlag
	}

	var (
		dict *gohunspell.Dictionary
		err  error
	)
	if cfg.Zip {
		dict, err = gohunspell.FromZip(cfg.Dict)
	} else {
		dict, err = gohunspell.FromFiles(cfg.Dict)
	}
	exitIfError("cannot load dictionary", err)

	checkWords(os.Stdin, os.Stdout, dict)
}

// checkWords reads one word per line from r and writes "word: OK" or
// "word: FAIL" for each to w.
func checkWords(r io.Reader, w io.Writer, dict *gohunspell.Dictionary) {
	scanner := bufio.NewScanner(r)
	out := bufio.NewWriter(w)
	defer out.Flush()

	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		verdict := "FAIL"
		if dict.Check(word) {
			verdict = "OK"
		}
		fmt.Fprintf(out, "%s: %s\n", word, verdict)
	}
}
