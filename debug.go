// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug

package xdd

// debugEnabled gates the per-unique-table-probe trace line, the same
// granularity the teacher's _DEBUG/_LOGLEVEL build-tag gate provided in
// bkernel.go/hkernel.go, now routed through zap instead of stdout.
const debugEnabled = true
