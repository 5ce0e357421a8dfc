package main

import "time"

type Config struct {
	BotName                   string        `env:"BOT_NAME,required=true"`
	BotAlias                  string        `env:"BOT_ALIAS"`
	BufferSize                int           `env:"BUFFER_SIZE,default=64"`
	DispatchLimit             int           `env:"DISPATCH_LIMIT,default=0"`
	ModerationCharReplacement string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	AllowedLanguages          []string      `env:"ALLOWED_LANGUAGES"`
	SinkTimeout               time.Duration `env:"SINK_TIMEOUT,default=2s"`
	RestartInterval           time.Duration `env:"RESTART_INTERVAL,default=5s"`
	MetricInterval            time.Duration `env:"METRIC_INTERVAL,default=30s"`
	LatencyThreshold          time.Duration `env:"LATENCY_THRESHOLD,default=500ms"`
	BrainFilepath             string        `env:"BRAIN_FILEPATH,required=true"`
	HelpIndexFilepath         string        `env:"HELP_INDEX_FILEPATH"`
	LogLevel                  string        `env:"LOG_LEVEL,default=INFO"`
}
