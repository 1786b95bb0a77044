// Package app loads configuration and wires the verification service.
//
// Configuration comes from a YAML file, an optional .env file and VITA_*
// environment variables, in increasing precedence. NewWire turns a validated
// Config into the key material, services and HTTP server that commands use.
package app
