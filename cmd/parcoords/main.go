// Command parcoords renders a parallel-coordinates plot from a JSON file
// of columns and records, either once to stdout or interactively over
// HTTP, where query parameters stand in for the host application's brush,
// reorder and color controls:
//
//	parcoords -input runs.json > plot.svg
//	parcoords -input runs.json -serve :8080
//	curl 'localhost:8080/?brush=lr:40:90&order=loss,lr&colorby=loss'
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"github.com/spf13/pflag"

	"github.com/LockDragonBorn/parcoords"
	"github.com/LockDragonBorn/parcoords/interact"
	"github.com/LockDragonBorn/parcoords/render"
)

var (
	input   = pflag.String("input", "", "JSON plot data file (required)")
	serve   = pflag.String("serve", "", "serve the plot over HTTP on this address instead of writing SVG to stdout")
	width   = pflag.Float64("width", 800, "plot width in pixels")
	height  = pflag.Float64("height", 400, "plot height in pixels")
	colorBy = pflag.String("colorby", "", "numeric column to color lines by")
)

func main() {
	log.SetPrefix("parcoords: ")
	log.SetFlags(0)
	pflag.Parse()
	if *input == "" {
		pflag.Usage()
		os.Exit(2)
	}

	data, err := loadFile(*input)
	if err != nil {
		log.Fatal(err)
	}

	if *serve == "" {
		var buf bytes.Buffer
		if err := data.renderSVG(&buf, *colorBy, nil, nil); err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(buf.Bytes())
		return
	}

	e := echo.New()
	e.HideBanner = true
	rendered := cache.New(5*time.Minute, 10*time.Minute)
	e.GET("/", func(ctx echo.Context) error {
		key := ctx.QueryString()
		if v, ok := rendered.Get(key); ok {
			return ctx.Blob(http.StatusOK, "image/svg+xml", v.([]byte))
		}

		cb := ctx.QueryParam("colorby")
		if cb == "" {
			cb = *colorBy
		}
		var buf bytes.Buffer
		err := data.renderSVG(&buf, cb,
			splitList(ctx.QueryParam("order")),
			ctx.QueryParams()["brush"])
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		rendered.Set(key, buf.Bytes(), cache.DefaultExpiration)
		return ctx.Blob(http.StatusOK, "image/svg+xml", buf.Bytes())
	})
	log.Fatal(e.Start(*serve))
}

// plotData is the decoded input file with columns resolved to a schema.
type plotData struct {
	schema  parcoords.Schema
	opts    parcoords.Options
	records []*parcoords.Record
	byName  map[string]int
}

type fileFormat struct {
	Columns []struct {
		Name  string `json:"name"`
		Kind  string `json:"kind"`
		Scale string `json:"scale,omitempty"`
	} `json:"columns"`
	Records []struct {
		ID     string                 `json:"id"`
		Values map[string]interface{} `json:"values"`
	} `json:"records"`
}

func loadFile(path string) (*plotData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fileFormat
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(f.Columns) == 0 {
		return nil, fmt.Errorf("%s: no columns", path)
	}

	d := &plotData{byName: make(map[string]int)}
	for i, fc := range f.Columns {
		kind := parcoords.Numeric
		switch fc.Kind {
		case "", "numeric":
		case "categorical":
			kind = parcoords.Categorical
		default:
			return nil, fmt.Errorf("%s: column %q: unknown kind %q", path, fc.Name, fc.Kind)
		}
		d.schema.Columns = append(d.schema.Columns, parcoords.Column{
			Index: i, Name: fc.Name, Kind: kind,
		})
		d.opts.Columns = append(d.opts.Columns, parcoords.ColumnOptions{Scale: fc.Scale})
		d.byName[fc.Name] = i
	}
	d.opts.ColorBy = -1

	for _, fr := range f.Records {
		rec := &parcoords.Record{ID: fr.ID, Values: make(map[int]interface{})}
		for name, v := range fr.Values {
			i, ok := d.byName[name]
			if !ok {
				continue
			}
			// Values of the wrong kind stay absent, which makes
			// the record invalid rather than failing the load.
			switch d.schema.Columns[i].Kind {
			case parcoords.Numeric:
				if x, ok := v.(float64); ok {
					rec.Values[i] = x
				}
			case parcoords.Categorical:
				if s, ok := v.(string); ok {
					rec.Values[i] = s
				}
			}
		}
		d.records = append(d.records, rec)
	}
	return d, nil
}

// renderSVG builds a fresh engine for the request's view of the data and
// writes the plot. order lists column names left to right; brushes are
// "column:lopx:hipx" specs.
func (d *plotData) renderSVG(buf *bytes.Buffer, colorBy string, order, brushes []string) error {
	opts := d.opts
	if colorBy != "" {
		i, ok := d.byName[colorBy]
		if !ok || d.schema.Columns[i].Kind != parcoords.Numeric {
			return fmt.Errorf("colorby: no numeric column %q", colorBy)
		}
		opts.ColorBy = i
	}

	ctl := interact.New(d.schema, opts, d.records, interact.Config{
		Width: *width, Height: *height,
	})
	defer ctl.Close()
	if err := ctl.Err(); err != nil {
		return err
	}

	if len(order) > 0 {
		idxs := make([]int, 0, len(order))
		for _, name := range order {
			i, ok := d.byName[name]
			if !ok {
				return fmt.Errorf("order: unknown column %q", name)
			}
			idxs = append(idxs, i)
		}
		if err := ctl.Model().SetOrder(idxs); err != nil {
			return err
		}
		ctl.Refresh()
	}

	for _, spec := range brushes {
		parts := strings.SplitN(spec, ":", 3)
		if len(parts) != 3 {
			return fmt.Errorf("brush: want column:lo:hi, got %q", spec)
		}
		i, ok := d.byName[parts[0]]
		if !ok {
			return fmt.Errorf("brush: unknown column %q", parts[0])
		}
		lo, err1 := strconv.ParseFloat(parts[1], 64)
		hi, err2 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil {
			return fmt.Errorf("brush: bad range in %q", spec)
		}
		ctl.BrushStart(i)
		ctl.BrushEnd(lo, hi)
	}

	ctl.Flush()
	render.SVG(buf, ctl, render.Options{})
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
