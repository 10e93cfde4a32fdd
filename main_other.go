//go:build !linux

package main

func prelude() {}
