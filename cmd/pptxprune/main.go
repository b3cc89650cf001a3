// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package main

import (
	_ "expvar"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
)

func realMain() error {
	// logging is unrequested output, whether it is debug information or error
	// details. Redirecting stdout to a file should result in a file that has
	// what the user requested and not a bunch of log messages _related_ to what
	// was asked for.
	logrus.SetOutput(os.Stderr)

	if os.Getenv("PPTXPRUNE_PROFILE") != "" {
		go http.ListenAndServe(":8910", nil)
		defer profile.Start().Stop()
	}
	return Execute()
}

func main() {
	// wrapping main allows us to use defer in realMain and still have them
	// executed even if we want to exit with a non-zero value, which requires
	// that we use os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
