// Package main provides the entry point for the SPLPv1 transcript checker.
// The checker replays a recorded client/server exchange through the session
// validator and reports whether every message was legal for its phase.
//
// Usage:
//
//	splp-validator [flags] [transcript]
//
// Flags:
//
//	-config string   Validator config file (TOML, optional)
//	-debug           Enable debug logging
//	-version         Show version information
//
// With no transcript argument, records are read from stdin. Each record is a
// direction field ("A->B" or "B->A"), one space, and the message text. Blank
// lines and lines starting with '#' are skipped.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-splp/go-splp-validator/lib/protocol"
	"github.com/go-splp/go-splp-validator/lib/session"
	"github.com/sirupsen/logrus"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"

	// Build info
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfgPath := flag.String("config", "", "validator config file (TOML)")
	debug := flag.Bool("debug", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("splp-validator %s\n", Version)
		fmt.Printf("Build time: %s\n", BuildTime)
		fmt.Printf("Git commit: %s\n", GitCommit)
		os.Exit(0)
	}

	// Configure logging
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *debug || os.Getenv("SPLP_DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	cfg := session.DefaultConfig()
	if path := configPath(*cfgPath); path != "" {
		loaded, err := session.LoadConfig(path)
		if err != nil {
			log.WithError(err).Error("Failed to load validator config")
			os.Exit(1)
		}
		cfg = loaded
		log.WithField("path", path).Debug("Loaded validator config")
	}

	in := io.Reader(os.Stdin)
	name := "stdin"
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.WithError(err).Error("Failed to open transcript")
			os.Exit(1)
		}
		defer f.Close()
		in = f
		name = flag.Arg(0)
	}

	valid, invalid, err := check(in, session.NewWithConfig(cfg), log)
	if err != nil {
		log.WithError(err).Error("Failed to read transcript")
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"transcript": name,
		"valid":      valid,
		"invalid":    invalid,
	}).Info("Transcript checked")

	if invalid > 0 {
		os.Exit(1)
	}
}

// configPath resolves the config file path: the -config flag wins, then the
// SPLP_CONFIG environment variable, then none.
func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("SPLP_CONFIG")
}

// check replays every transcript record through the session and counts
// verdicts. A record that cannot be parsed at all aborts the run; that is a
// transcript defect, not a protocol violation.
func check(r io.Reader, s *session.Session, log *logrus.Logger) (valid, invalid int, err error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if skipRecord(line) {
			continue
		}

		msg, perr := protocol.ParseRecord(line)
		if perr != nil {
			return valid, invalid, fmt.Errorf("line %d: %w", lineNo, perr)
		}

		before := s.Phase()
		if s.Validate(msg) == session.VerdictValid {
			valid++
			log.WithFields(logrus.Fields{
				"line": lineNo,
				"from": before.String(),
				"to":   s.Phase().String(),
			}).Debug("Valid message")
		} else {
			invalid++
			log.WithFields(logrus.Fields{
				"line":      lineNo,
				"phase":     before.String(),
				"direction": msg.Direction.String(),
			}).Warn("Protocol violation, session reset")
		}
	}
	return valid, invalid, scanner.Err()
}

// skipRecord reports whether a transcript line is a blank or a comment.
func skipRecord(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
