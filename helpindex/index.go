// Package helpindex maintains a full-text index over responder usage lines,
// powering the help script's search.
package helpindex

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"
	"hearsay/domain"
)

type Entry struct {
	Script string
	ID     string
	Usage  string
	Help   string
}

type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

// Open creates or reopens an index at path.
func Open(path string, log *slog.Logger) (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(path))
	if err != nil {
		return nil, fmt.Errorf("opening help index: %w", err)
	}
	return &Index{writer: writer, log: log}, nil
}

// OpenInMemory builds an index that lives only for the process. Used by the
// demo bot and tests, where rebuilding from the registry at startup is cheap.
func OpenInMemory(log *slog.Logger) (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("opening in-memory help index: %w", err)
	}
	return &Index{writer: writer, log: log}, nil
}

// Add indexes the given responders. Responders without a usage line carry no
// help surface and are skipped.
func (i *Index) Add(responders []domain.Responder) error {
	indexed := 0
	for _, r := range responders {
		if r.Usage == "" {
			continue
		}
		doc := bluge.NewDocument(r.Script + "/" + r.ID).
			AddField(bluge.NewKeywordField("script", r.Script).StoreValue()).
			AddField(bluge.NewKeywordField("id", r.ID).StoreValue()).
			AddField(bluge.NewTextField("usage", r.Usage).StoreValue()).
			AddField(bluge.NewTextField("help", r.Help).StoreValue())
		if err := i.writer.Update(doc.ID(), doc); err != nil {
			return fmt.Errorf("indexing %s/%s: %w", r.Script, r.ID, err)
		}
		indexed++
	}
	i.log.Debug(fmt.Sprintf("%d responders indexed for help search", indexed))
	return nil
}

// Search returns the entries whose usage or help text matches the query.
func (i *Index) Search(ctx context.Context, query string, limit int) ([]Entry, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening help index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	match := bluge.NewBooleanQuery().AddShould(
		bluge.NewMatchQuery(query).SetField("usage"),
		bluge.NewMatchQuery(query).SetField("help"),
	)

	it, err := reader.Search(ctx, bluge.NewTopNSearch(limit, match))
	if err != nil {
		return nil, fmt.Errorf("searching help index: %w", err)
	}

	var entries []Entry
	for {
		next, err := it.Next()
		if err != nil {
			return nil, fmt.Errorf("iterating help results: %w", err)
		}
		if next == nil {
			break
		}

		var entry Entry
		err = next.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "script":
				entry.Script = string(value)
			case "id":
				entry.ID = string(value)
			case "usage":
				entry.Usage = string(value)
			case "help":
				entry.Help = string(value)
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("reading stored fields: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (i *Index) Close() error {
	return i.writer.Close()
}
