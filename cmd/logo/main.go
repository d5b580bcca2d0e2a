package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"logo/internal"
)

// main is the thin CLI entry point: reads a source path from os.Args,
// wires OnPrint to a color-aware writer, and reports parse/runtime errors
// through the logrus-based diagnostics reporter.
func main() {
	argsWithoutProg := os.Args[1:]

	if len(argsWithoutProg) != 1 {
		fmt.Println("Usage: logo /path/to/source.logo")
		return
	}

	absPath, err := filepath.Abs(argsWithoutProg[0])
	if err != nil {
		logrus.Fatal(err)
	}

	b, err := ioutil.ReadFile(absPath)
	if err != nil {
		logrus.Fatal(err)
	}

	log := logrus.New()
	entry := log.WithField("file", absPath)

	interp := internal.NewInterpreter()
	interp.OnPrint = func(s string) {
		fmt.Println(color.Cyan(s))
	}

	if _, err := interp.Execute(string(b)); err != nil {
		internal.ReportError(entry, err)
		fmt.Fprintln(os.Stderr, color.Red(err.Error()))
		os.Exit(1)
	}
}
