package main

import (
	"fmt"

	"github.com/ddvk/lrtrack/internal/config"
	"github.com/ddvk/lrtrack/lrb"
	"github.com/ddvk/lrtrack/track"
	"github.com/ddvk/lrtrack/trackjson"
)

func decode(format string, data []byte) (*track.Track, []lrb.Warning, error) {
	switch format {
	case config.FormatLRB:
		return lrb.Read(data)
	case config.FormatJSON:
		t, err := trackjson.Read(data)
		return t, nil, err
	}
	return nil, nil, fmt.Errorf("unknown format %q", format)
}

func encode(format string, t *track.Track, cfg *config.Config) ([]byte, error) {
	switch format {
	case config.FormatLRB:
		w := lrb.NewWriter()
		w.Version = cfg.LRB.FormatVersion
		return w.Write(t)
	case config.FormatJSON:
		return trackjson.Write(t)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
