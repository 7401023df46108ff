package flags

import (
	"flag"
	"fmt"
	"os"

	"github.com/chatterd/chatterd/pkg/version"
	log "github.com/sirupsen/logrus"
)

// ConfigureAndParse adds flags that are common to all go processes. This
// func calls Parse on the flag set, so it should be called after all other
// flags have been configured.
func ConfigureAndParse(cmd *flag.FlagSet, args []string) {
	logLevel := cmd.String("log-level", log.InfoLevel.String(),
		"log level, must be one of: panic, fatal, error, warn, info, debug")
	logFormat := cmd.String("log-format", "plain",
		"log format, must be one of: plain, json")
	printVersion := cmd.Bool("version", false, "print version and exit")

	cmd.Parse(args)

	setLogFormat(*logFormat)
	setLogLevel(*logLevel)
	maybePrintVersionAndExit(*printVersion)
}

func setLogFormat(format string) {
	switch format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "plain":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		log.Fatalf("unsupported log-format: %s", format)
	}
}

func setLogLevel(logLevel string) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatalf("invalid log-level: %s", logLevel)
	}
	log.SetLevel(level)
}

func maybePrintVersionAndExit(printVersion bool) {
	if printVersion {
		fmt.Println(version.Version)
		os.Exit(0)
	}
	log.Infof("running version %s", version.Version)
}
