package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/logrusorgru/aurora"

	"github.com/namebasehq/exchange-go/exchange"
	"github.com/namebasehq/exchange-go/stream"
)

func main() {
	//
	// Pull credentials from the environment. A local .env file is honored when present so that
	// keys never have to be passed on the command line.
	//
	_ = godotenv.Load()

	accessKey := os.Getenv("NAMEBASE_ACCESS_KEY")
	secretKey := os.Getenv("NAMEBASE_SECRET_KEY")

	client, err := exchange.NewClient(accessKey, secretKey)
	if err != nil {
		log.Fatalf("Failed to construct the exchange client. (Error: %s)", err)
	}

	//
	// Register a kill signal handler with the operating system so that we can gracefully shutdown
	// if necessary.
	//
	osInterrupt := make(chan os.Signal, 1)

	signal.Notify(osInterrupt, os.Interrupt)

	//
	// Print the current price before tailing the live feed.
	//
	ticker, err := client.GetTickerPrice(exchange.HNSBTC)
	if err != nil {
		log.Fatalf("Failed to fetch the current ticker price. (Error: %s)", err)
	}

	log.Printf(
		"Current %s price is %s.",
		exchange.HNSBTC,
		aurora.Bold(aurora.Green(fmt.Sprintf("%v BTC", ticker["price"]))),
	)

	//
	// Subscribe to the live trade feed and print every trade that comes across it.
	//
	sub, err := stream.Dial(stream.Trades)
	if err != nil {
		log.Fatalf("Failed to connect to the trade feed. (Error: %s)", err)
	}

	go func() {
		for msg := range sub.Messages() {
			log.Printf("Trade: %s", aurora.Yellow(string(msg)))
		}
	}()

	//
	// Block until we are shut down by the operating system.
	//
	<-osInterrupt

	log.Print("An operating system interrupt has been received. Shutting down...")

	if err := sub.Close(); err != nil {
		log.Fatalf("Failed to close the trade feed connection. (Error: %s)", err)
	}

	log.Print("Goodbye.")
}
