package main

// Set with ldflags on release builds.
var version = "dev"
