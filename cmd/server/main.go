package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/citydeals/spinwheel/config"
	"github.com/citydeals/spinwheel/pkg/otellib"
	"github.com/citydeals/spinwheel/repository"
	"github.com/citydeals/spinwheel/service/spin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := otellib.InitOtel("spinwheel-api", "local", conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)

	spinServer := spin.NewServer(provider, conf.Engine, logger)

	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())
	spinServer.Register(httpMux)

	startHTTPServer(conf, httpMux)
}

func startHTTPServer(conf config.Config, mux *http.ServeMux) {
	fmt.Println("HTTP:", conf.Server.HTTP.ListenString())

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: mux,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		fmt.Println("Shutdown HTTP server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, os.Kill)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	<-done
}
