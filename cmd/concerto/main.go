/*
* Copyright (c) 2026-present Concerto project contributors
 */
package main

import (
	"os"

	"github.com/tech-bash/concerto/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
