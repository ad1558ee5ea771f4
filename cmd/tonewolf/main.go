// Command tonewolf runs the real-time DTMF decoding pipeline against the
// default (or filter-selected) microphone input and prints key
// transitions to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/tonewolf/tonewolf/audio"
	"github.com/tonewolf/tonewolf/dtmf"
	"github.com/tonewolf/tonewolf/logging"
	"github.com/tonewolf/tonewolf/view"
)

func main() {
	var configPath = pflag.StringP("config", "c", "", "Path to an optional YAML config file.")
	var threshold = pflag.Float64P("threshold", "t", 0, "Detection threshold (magnitude units after scaling by N/2). 0 keeps the config/default value.")
	var windowMS = pflag.IntP("window-ms", "w", 0, "Analysis window length in milliseconds. 0 keeps the config/default value.")
	var monitorInterval = pflag.IntP("monitor-interval", "m", -1, "Seconds between capture level reports, 0 to disable. -1 keeps the config/default value.")
	var sampleRate = pflag.IntP("sample-rate", "r", 0, "Sample rate hint in Hz. 0 keeps the config/default value.")
	var device = pflag.StringP("device", "d", "", "Case-insensitive substring filter for the input device name. Empty uses the platform default.")
	var timestampFormat = pflag.StringP("timestamp-format", "T", "", "strftime format for capture-level report timestamps. Empty keeps the config/default value.")
	var logLevel = pflag.StringP("log-level", "l", "info", "Log level: trace, debug, info, warn, error.")
	var showVersion = pflag.BoolP("version", "V", false, "Print version and exit.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: tonewolf [options]\n\n")
		fmt.Fprintf(os.Stderr, "Decode DTMF tones from the default microphone input in real time.\n\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()

		return
	}

	if *showVersion {
		printVersion()

		return
	}

	var cfg, err = loadConfigFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tonewolf: %v\n", err)
		os.Exit(1)
	}

	if *threshold > 0 {
		cfg.DetectionThreshold = *threshold
	}

	if *windowMS > 0 {
		cfg.WindowMS = *windowMS
	}

	if *monitorInterval >= 0 {
		cfg.MonitorIntervalSeconds = *monitorInterval
	}

	if *sampleRate > 0 {
		cfg.SampleRateHint = *sampleRate
	}

	if *device != "" {
		cfg.Device = *device
	}

	if *timestampFormat != "" {
		cfg.TimestampFormat = *timestampFormat
	}

	var level, levelErr = log.ParseLevel(*logLevel)
	if levelErr != nil {
		level = log.InfoLevel
	}

	// charmbracelet/log has no trace level; Trace is routed through Debug,
	// so "trace" also lowers the minimum level to debug.
	var traceEnabled = *logLevel == "trace"
	if traceEnabled {
		level = log.DebugLevel
	}

	var logger = logging.New(os.Stderr, level, traceEnabled)

	var capture, captureErr = audio.NewPortAudioCapture(cfg.Device, cfg.SampleRateHint, logger)
	if captureErr != nil {
		logger.Fatal("failed to open capture device", "error", captureErr)
	}

	var termView = view.NewTerminal(os.Stdout)
	var pipeline = dtmf.NewPipeline(cfg, capture, logger, termView)

	if err := pipeline.Init(); err != nil {
		logger.Fatal("failed to initialize pipeline", "error", err)
	}

	installSignalShutdown(pipeline, logger)

	if err := pipeline.Run(); err != nil {
		logger.Fatal("pipeline exited with error", "error", err)
	}

	pipeline.Cleanup()
}
