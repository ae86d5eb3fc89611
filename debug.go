// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

//go:build debug

package robdd

import (
	"log"
	"os"
)

const _LOGLEVEL int = 1

func init() {
	log.SetOutput(os.Stdout)
}
