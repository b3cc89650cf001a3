// Copyright 2018 IBM Corporation
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package analysis

import (
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var log logrus.FieldLogger

func init() {
	logrus.SetFormatter(new(prefixed.TextFormatter))
	log = logrus.WithField("prefix", "analysis")
}
