// Copyright (c) 2026 The ROBDD-Bulider Authors
//
// MIT License

//go:build !debug

package robdd

const _LOGLEVEL int = 0
