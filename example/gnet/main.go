// FILE: example/gnet/main.go
package main

import (
	"os"

	"github.com/panjf2000/gnet/v2"

	"github.com/loggable-io/loggable"
	"github.com/loggable-io/loggable/compat"
	"github.com/loggable-io/loggable/sinks"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	engine, err := loggable.NewBuilder().
		Backend(loggable.NewGoBackend()).
		LevelString("debug").
		QueueCapacity(1024).
		Sink(sinks.NewConsole(os.Stdout)).
		Build()
	if err != nil {
		panic(err)
	}

	engine.Activate()
	defer engine.Deactivate()

	adapter := compat.NewGnetAdapter(engine)

	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(adapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
