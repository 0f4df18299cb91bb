package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/Fatty911/nodes-subconverter/config"
)

var (
	app = kingpin.New(
		"nodes-subconverter",
		"Annotates proxy subscription nodes with real geolocation data")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("NODES_SUBCONVERTER_DEBUG").
		Bool()
	serve = app.Flag("serve", "Run HTTP API instead of a one-shot conversion.").
		Envar("NODES_SUBCONVERTER_SERVE").
		Bool()
	outputPath = app.Flag("output", "Path to the output file. Default is stdout.").
			Short('o').
			String()
	authToken = app.Flag("auth-token", "Auth token for the geolocation provider. Overrides a config value.").
			Envar("NODES_SUBCONVERTER_AUTH_TOKEN").
			String()
	configFile = app.Arg("config-path", "Path to the config.").
			Required().
			File()
	subscriptionFile = app.Arg("subscription-path", "Path to the subscription. Default is stdin.").
				File()
)

func init() {
	app.Version(version)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	conf, err := config.Parse(*configFile)
	if err != nil {
		log.Fatal(err.Error())
	}

	if *authToken != "" {
		conf.AuthToken = *authToken
	}

	annotator, err := makeAnnotator(conf)
	if err != nil {
		log.Fatal(err.Error())
	}

	rootCtx, cancel := makeRootContext()
	defer cancel()

	if *serve {
		if err := runServer(rootCtx, conf, annotator); err != nil {
			log.Fatal(err.Error())
		}

		return
	}

	if err := runConvert(rootCtx, annotator); err != nil {
		log.Fatal(err.Error())
	}
}
