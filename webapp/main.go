package main

import (
	"flag"
	"github.com/go-redis/redis/v7"
	"github.com/guardian/encodingstatus/common/helpers"
	"github.com/guardian/encodingstatus/webapp/media"
	"log"
	"net/http"
)

type MyHttpApp struct {
	healthcheck HealthcheckHandler
	media       media.MediaEndpoints
}

func SetupRedis(config *helpers.Config) (*redis.Client, error) {
	log.Printf("Connecting to Redis on %s", config.Redis.Address)
	client := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Address,
		Password: config.Redis.Password,
		DB:       config.Redis.DBNum,
	})

	_, err := client.Ping().Result()
	if err != nil {
		log.Printf("Could not contact Redis: %s", err)
		return nil, err
	}
	log.Printf("Done.")
	return client, nil
}

func main() {
	var app MyHttpApp
	configFile := flag.String("config", "config/serverconfig.yaml", "path to the server config file")
	flag.Parse()

	/*
		read in config and establish connection to persistence layer
	*/
	log.Printf("Reading config from %s", *configFile)
	config, configReadErr := helpers.ReadConfig(*configFile)
	log.Print("Done.")

	if configReadErr != nil {
		log.Fatal("No configuration, can't continue")
	}

	redisClient, redisErr := SetupRedis(config)
	if redisErr != nil {
		log.Fatal("Could not connect to redis")
	}

	app.healthcheck.redisClient = redisClient
	app.media = media.NewMediaEndpoints(redisClient, config)

	http.Handle("/default", http.NotFoundHandler())
	http.Handle("/healthcheck", app.healthcheck)

	app.media.WireUp("/api/media")

	log.Printf("Starting server on %s", config.Server.ListenAddress)
	startServerErr := http.ListenAndServe(config.Server.ListenAddress, nil)

	if startServerErr != nil {
		log.Fatal(startServerErr)
	}
}
