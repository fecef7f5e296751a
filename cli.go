package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
)

const usageLine = `usage: %s [-h] [-V] [-a] [-l] [-1] [-git] [-debug] [file ...]
`

const helpMessage = `
ils - directory listings with icons

positional arguments:
  file          files or directories to display

options:
  -h, -help     show this help message and exit
  -V, -version  show program's version number and exit
  -a            do not ignore entries starting with .
  -l            use a long listing format (adds a size column)
  -1            display entries without column alignment
  -git          display git status
  -debug        write diagnostic logging to stderr

environment:
  ILS_GIT       if set to a true value, enables -git by default
  ILS_DEBUG     if set to a true value, enables -debug by default

configuration:
  read from the first existing file of $XDG_CONFIG_HOME/ils/config,
  $XDG_CONFIG_HOME/ils.conf, ~/.config/ils/config, ~/.config/ils.conf,
  ~/.ilsrc, ./.ilsrc
`

type options struct {
	help    bool
	version bool
	all     bool
	long    bool
	simple  bool
	git     bool
	debug   bool
}

var opt options

func initOptions() {
	opt.git, _ = strconv.ParseBool(os.Getenv("ILS_GIT"))
	opt.debug, _ = strconv.ParseBool(os.Getenv("ILS_DEBUG"))

	flag.BoolVar(&opt.help, "h", false, "")
	flag.BoolVar(&opt.help, "help", false, "")
	flag.BoolVar(&opt.version, "V", false, "")
	flag.BoolVar(&opt.version, "version", false, "")
	flag.BoolVar(&opt.all, "a", false, "")
	flag.BoolVar(&opt.long, "l", false, "")
	flag.BoolVar(&opt.simple, "1", false, "")
	flag.BoolVar(&opt.git, "git", opt.git, "")
	flag.BoolVar(&opt.debug, "debug", opt.debug, "")
	flag.Usage = func() {
		// When triggered by an error, print compact version to stderr.
		fmt.Fprintf(flag.CommandLine.Output(), usageLine, progName)
	}
	flag.Parse()

	if opt.help {
		// When user-initiated, print detailed usage message to stdout.
		flag.CommandLine.SetOutput(os.Stdout)
		flag.Usage()
		fmt.Fprint(os.Stdout, helpMessage)
		os.Exit(0)
	}
	if opt.version {
		fmt.Println(version())
		os.Exit(0)
	}
}

// apply overlays command-line switches onto the resolved config.
// Switches only force features on; disabling happens in the config.
func (o options) apply(st *settings) {
	if o.all {
		st.showHidden = true
	}
	if o.long {
		st.longFormat = true
	}
	if o.simple {
		st.columnFormat = false
	}
	if o.git {
		st.showGit = true
	}
}

func version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return progName + " unknown"
	}
	return fmt.Sprintf("%s %s", progName, bi.Main.Version)
}
