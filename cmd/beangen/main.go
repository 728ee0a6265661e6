package main

import (
	"os"
	"strings"

	"github.com/Alia5/beangen/internal/config"
	"github.com/Alia5/beangen/internal/configpaths"
	"github.com/Alia5/beangen/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; real environment variables win over it.
	_ = godotenv.Load()

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("beangen"),
		kong.Description("Generate JavaBeans accessor classes from @BeanState declarations"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	transcript := log.NewTranscript(nil)
	if cli.Log.TranscriptFile != "" {
		f, err := os.OpenFile(cli.Log.TranscriptFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open transcript file", "file", cli.Log.TranscriptFile, "error", err)
		} else {
			transcript = log.NewTranscript(f)
			closeFiles = append(closeFiles, f)
		}
	}

	ctx.Bind(logger)
	ctx.BindTo(transcript, (*log.Transcript)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("BEANGEN_CONFIG"); v != "" {
		return v
	}
	return ""
}
