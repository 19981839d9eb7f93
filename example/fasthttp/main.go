// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/loggable-io/loggable"
	"github.com/loggable-io/loggable/compat"
	"github.com/loggable-io/loggable/sinks"
)

func main() {
	engine, err := loggable.NewBuilder().
		Backend(loggable.NewGoBackend()).
		Level(loggable.LevelInfo).
		QueueCapacity(2048).
		Sink(sinks.NewConsole(os.Stdout)).
		Build()
	if err != nil {
		panic(err)
	}

	engine.Activate()
	defer engine.Deactivate()

	// Create fasthttp adapter with custom level detection
	adapter := compat.NewFastHTTPAdapter(
		engine,
		compat.WithDefaultLevel(loggable.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  adapter,

		Name:         "loggable-demo",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) loggable.Level {
	// Can inspect specific fasthttp message patterns
	if strings.Contains(msg, "connection cannot be served") {
		return loggable.LevelWarning
	}
	if strings.Contains(msg, "error when serving connection") {
		return loggable.LevelError
	}

	return compat.DetectLevel(msg)
}
