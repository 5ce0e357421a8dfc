package main

import (
	"context"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"hearsay/brain"
	"hearsay/contract"
	"hearsay/domain"
	"hearsay/helpindex"
	"hearsay/runtime"
	"hearsay/scripts"
)

type Config struct {
	BotName  string `envconfig:"BOT_NAME" default:"hearsay"`
	BotAlias string `envconfig:"BOT_ALIAS"`
	// INSPECT_COLOURS enables colorized output for better readability
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

// Standalone viewer for the responder table: it wires the shipped scripts
// exactly like the bot does, so the output reflects what the engine would
// actually register, without needing the bot to be running.
func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString("ERROR")

	// In-memory stores: handlers are never invoked here, but the script
	// constructors need working dependencies.
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatalf("Failed to open in-memory store: %v", err)
	}
	defer db.Close()

	index, err := helpindex.OpenInMemory(logger)
	if err != nil {
		log.Fatalf("Failed to open help index: %v", err)
	}
	defer index.Close()

	identity := domain.Identity{Name: config.BotName, Alias: config.BotAlias}
	registry := runtime.NewRegistry(logger, identity)

	noReply := func(context.Context, domain.Message, string) error { return nil }
	all := []contract.Script{
		scripts.NewPing(noReply),
		scripts.NewRemember(brain.NewBrain(db, logger), noReply),
		scripts.NewHelp(index, func() []string { return nil }, noReply),
	}

	// Registering surfaces the same startup failures the bot would hit
	// (malformed patterns, duplicates, dangling handler ids).
	if err := registry.Register(all...); err != nil {
		log.Fatalf("Registration failed: %v", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Script", "ID", "Type", "Pattern", "Usage"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, script := range all {
		for _, def := range script.Definitions() {
			table.Append([]string{
				script.Name(),
				def.ID,
				string(def.Type),
				def.Pattern,
				def.Usage,
			})
		}
	}

	banner := "Registered responders for bot " + config.BotName
	if config.Colours {
		banner = color.New(color.BgBlack, color.FgGreen).Render(banner)
	}
	log.SetFlags(0)
	log.Println(banner)
	table.Render()
}
