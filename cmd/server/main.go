package main

import (
	"flag"
	"net/http"
	"os"
	"pokerrank/internal/config"
	"pokerrank/internal/mux"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (defaults to server.addr in the configuration)")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	logger := logrus.WithField("run", uuid.New().String())

	// fail fast
	wilds, err := cfg.Wilds()
	if err != nil {
		logger.WithError(err).Fatal("could not parse wild cards")
	}

	m, err := mux.NewMux(logger, Version, cfg.RankerOptions(), wilds)
	if err != nil {
		logger.WithError(err).Fatal("could not create ranker")
	}

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	srv := &http.Server{
		Addr:         listen,
		Handler:      loggingHandler(c.Handler(m)),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logger.WithFields(logrus.Fields{
		"addr":     srv.Addr,
		"handSize": cfg.HandSize,
		"extended": cfg.Extended,
		"wilds":    strings.Join(cfg.WildCards, ","),
	}).Info("listening")
	logger.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
