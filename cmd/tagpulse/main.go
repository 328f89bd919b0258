// Package main provides the entry point for the tagpulse CLI.
//
// tagpulse collects public posts for a hashtag search on X through a remote
// Browserbase browser session, labels each post with a coarse sentiment
// stance, ranks discussion themes, and emits a CSV dataset plus a
// one-sentence summary.
//
// Usage:
//
//	tagpulse run --hashtag Tariffs
//	tagpulse history --archive runs.db
//
// See --help for all available options.
package main

// main is the entry point for tagpulse.
func main() {
	Execute()
}
