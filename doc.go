// Nodes-subconverter annotates proxy subscriptions with real
// geolocation data.
//
// Idea is simple: you have a Clash subscription with a list of proxy
// nodes. Names in such subscriptions rarely tell where a node is
// actually hosted. This tool queries a geolocation provider for each
// node address and rewrites a node name so that a real location
// becomes a part of it.
//
// Tool itself is organized into 4 logical parts:
//
// Geolib
//
// geolib is a main package of the application which contains Annotator
// struct and main logic related to enrichment: pacing of lookups,
// outcome classification and name rewriting.
//
// Providers
//
// This package has a set of geolocation provider implementations.
// ip-api.com and ipinfo.io are covered.
//
// Subconv
//
// This package parses and encodes Clash subscriptions. Fields it does
// not know about survive a round trip intact.
//
// Main package
//
// A main package wires everything into a CLI. Resulting binary
// converts a subscription in one shot or, with --serve, starts an http
// server exposing the same enrichment as a JSON API.
package main
