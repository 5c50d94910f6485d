package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/figbridge"
	"github.com/phanxgames/figbridge/componentmap"
	"github.com/phanxgames/figbridge/config"
	"github.com/phanxgames/figbridge/figmafile"
	"github.com/phanxgames/figbridge/logging"
)

// version is set at build time with -ldflags.
var version = "dev"

var (
	configPath     string
	logLevel       string
	componentsPath string
	postProcess    bool
)

var rootCmd = &cobra.Command{
	Use:           "figbridge",
	Short:         "Build scene trees from Figma documents",
	Long:          `figbridge translates a cached Figma file response into a scene tree of containers, text primitives and component instances.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "TOML config file")
	pf.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.StringVar(&componentsPath, "components", "", "component map YAML (defaults to the built-in map)")
	pf.BoolVar(&postProcess, "post-process", false, "run component post-processing")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// pipeline is everything a command needs to run one build.
type pipeline struct {
	cfg     *config.Config
	log     *zap.Logger
	file    *figmafile.File
	scene   *figbridge.Scene
	builder *figbridge.Builder
	missing []string
}

func newPipeline(cmd *cobra.Command, path string) (*pipeline, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	lc := logging.DefaultConfig()
	if cfg.Logging.Development {
		lc = logging.DevelopmentConfig()
	}
	if cfg.Logging.Level != "" {
		lc.Level = cfg.Logging.Level
	}
	log, err := logging.New(lc)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	file, err := figmafile.Load(path)
	if err != nil {
		return nil, err
	}

	lib := figbridge.DefaultLibrary()
	mapPath := componentsPath
	if mapPath == "" {
		mapPath = cfg.Components.MapPath
	}
	var (
		table   figbridge.ComponentTable
		missing []string
	)
	if mapPath != "" {
		table, missing, err = componentmap.LoadFile(mapPath, lib)
	} else {
		table, err = componentmap.Default(lib)
	}
	if err != nil {
		return nil, err
	}
	for _, m := range missing {
		log.Warn("component map names an unknown prefab", zap.String("component", m))
	}

	ec := cfg.Engine()
	if name := cfg.Frames.Background; name != "" {
		asset, ok := lib.LookupAsset(name)
		if !ok {
			return nil, fmt.Errorf("frame background prefab %q not found", name)
		}
		ec.FrameBackground = asset
	}
	if font, err := figbridge.LoadTTFFont(goregular.TTF, 16); err == nil {
		ec.Font = font
	} else {
		log.Warn("text measurement disabled", zap.Error(err))
	}

	scene := figbridge.NewScene()
	scene.AddFramesFolder(cfg.Import.FramesFolder)

	opts := []figbridge.BuilderOption{
		figbridge.WithLogger(log),
		figbridge.WithPostProcessing(postProcess || cfg.Import.PostProcess),
	}
	return &pipeline{
		cfg:     cfg,
		log:     log,
		file:    file,
		scene:   scene,
		builder: figbridge.NewBuilder(scene, table, ec, opts...),
		missing: missing,
	}, nil
}

func (p *pipeline) build() (*figbridge.BuildResult, error) {
	defer func() { _ = p.log.Sync() }()
	return p.builder.Build(p.file.Pages(), p.cfg.Import.Target)
}
