package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet and wasm loader).
//
//go:embed static/*
var StaticFS embed.FS
