package main

import "github.com/alecthomas/kong"

// CLIInput stores all commands, flags and arguments that can be passed to the application
type CLIInput struct {
	Version kong.VersionFlag `short:"v" name:"version" help:"Get version number."`
	// Config points to an optional YAML file with the server settings
	Config string `env:"CONFIG" short:"c" name:"config" type:"path" help:"YAML file with the server settings. Environment variables override its values."`

	Serve ServeCmd `cmd:"" default:"1" help:"Start the web server."`
	Parse ParseCmd `cmd:"" help:"Print periods in canonical form."`
	Add   AddCmd   `cmd:"" help:"Add a period to an instant."`
	Seq   SeqCmd   `cmd:"" help:"Print a sequence of instants spaced by a period."`
	Token TokenCmd `cmd:"" help:"Print a token allowing to save and delete periods."`
}

// ServeCmd starts the web server
type ServeCmd struct{}

// ParseCmd reads periods from its arguments or from a file, one per line
type ParseCmd struct {
	Periods []string `arg:"" optional:"" help:"Periods to parse, such as 1y2m/12:00:00. NA is a missing period."`
	File    string   `short:"f" name:"file" help:"File with one period per line."`
	ISO     bool     `name:"iso" help:"Print periods in ISO-8601 form."`
}

// AddCmd adds or subtracts a period to an RFC 3339 instant
type AddCmd struct {
	Instant  string `arg:"" help:"Instant in RFC 3339 format."`
	Period   string `arg:"" help:"Period to add."`
	Zone     string `short:"z" name:"zone" default:"UTC" help:"Time zone in which calendar units are counted."`
	Subtract bool   `short:"s" name:"subtract" help:"Subtract the period instead."`
}

// SeqCmd generates instants from a start, stepping by a period until an end
// or for a number of elements
type SeqCmd struct {
	From   string `name:"from" required:"" help:"First instant, in RFC 3339 format."`
	By     string `name:"by" required:"" help:"Period between instants."`
	To     string `name:"to" xor:"end" required:"" help:"Last possible instant, in RFC 3339 format."`
	Length int    `name:"length" xor:"end" required:"" help:"Number of instants."`
	Zone   string `short:"z" name:"zone" default:"UTC" help:"Time zone in which calendar units are counted."`
}

// TokenCmd signs a token with the configured JWT secret
type TokenCmd struct {
	Subject    string `arg:"" help:"Who the token is issued to."`
	Expiration int    `name:"expiration" default:"24" help:"Hours until the token expires."`
}
