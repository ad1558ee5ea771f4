package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/tonewolf/tonewolf/dtmf"
)

// installSignalShutdown wires SIGINT/SIGTERM to Pipeline.Shutdown, the
// application-shell responsibility spec §1 excludes from the core but
// which any real entry point needs — the OS message pump named in the
// Out-of-scope list is a GUI event loop, not the absence of signal
// handling in a CLI front end.
func installSignalShutdown(p *dtmf.Pipeline, logger dtmf.Logger) {
	var sigCh = make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		var sig = <-sigCh
		logger.Info("shutting down", "signal", sig.String())
		p.Shutdown()
	}()
}
