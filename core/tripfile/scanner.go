// Package tripfile parses .trip plan files. A plan file declares one
// or more trip blocks the CLI estimates in order:
//
//	trip "carnival" {
//	  origin           = "São Paulo"
//	  destination      = "Rio de Janeiro"
//	  destination_code = "RIO"
//	  mode             = "flight"
//	  class            = "economy"
//	  passengers       = 2
//	  start_date       = "2026-02-10"
//	  end_date         = "2026-02-17"
//	}
package tripfile

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"tripcost/core/types"
	"tripcost/internal/errors"
)

// DateLayout is the calendar date format used in plan files
const DateLayout = "2006-01-02"

// Trip is one parsed trip block
type Trip struct {
	// Name is the block label
	Name string

	// Params are the decoded trip parameters
	Params types.TripParams
}

// Parser parses trip plan files
type Parser struct {
	parser *hclparse.Parser
}

// NewParser creates a Parser
func NewParser() *Parser {
	return &Parser{parser: hclparse.NewParser()}
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "trip", LabelNames: []string{"name"}},
	},
}

var tripSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "origin", Required: true},
		{Name: "destination", Required: true},
		{Name: "destination_code"},
		{Name: "mode", Required: true},
		{Name: "class"},
		{Name: "passengers"},
		{Name: "start_date", Required: true},
		{Name: "end_date", Required: true},
	},
}

// ParseFile reads and decodes a plan file
func (p *Parser) ParseFile(path string) ([]Trip, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeInput, err, "failed to read plan file %s", path)
	}
	return p.Parse(src, path)
}

// Parse decodes plan file source
func (p *Parser) Parse(src []byte, filename string) ([]Trip, error) {
	file, diags := p.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("invalid plan file %s", filename), diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("invalid plan file %s", filename), diags)
	}

	var trips []Trip
	for _, block := range content.Blocks {
		trip, err := decodeTripBlock(block)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	if len(trips) == 0 {
		return nil, errors.Newf(errors.TypeInput, "plan file %s declares no trips", filename)
	}
	return trips, nil
}

func decodeTripBlock(block *hcl.Block) (Trip, error) {
	name := block.Labels[0]

	content, diags := block.Body.Content(tripSchema)
	if diags.HasErrors() {
		return Trip{}, errors.Parsing(fmt.Sprintf("invalid trip %q", name), diags)
	}

	attrs := blockAttrs{name: name, attrs: content.Attributes}

	params := types.TripParams{
		OriginCity:      attrs.str("origin"),
		DestinationCity: attrs.str("destination"),
		DestinationCode: attrs.str("destination_code"),
		Mode:            types.TransportMode(attrs.str("mode")),
		Passengers:      attrs.intOr("passengers", 1),
	}

	switch params.Mode {
	case types.ModeFlight:
		params.FlightClass = types.FlightClass(attrs.strOr("class", string(types.FlightEconomy)))
	case types.ModeBus:
		params.BusClass = types.BusClass(attrs.strOr("class", string(types.BusConventional)))
	}

	var err error
	if params.StartDate, err = attrs.date("start_date"); err != nil {
		return Trip{}, err
	}
	if params.EndDate, err = attrs.date("end_date"); err != nil {
		return Trip{}, err
	}
	if attrs.err != nil {
		return Trip{}, attrs.err
	}

	return Trip{Name: name, Params: params}, nil
}

// blockAttrs decodes attribute values, collecting the first error so
// decode call sites stay flat
type blockAttrs struct {
	name  string
	attrs hcl.Attributes
	err   error
}

func (b *blockAttrs) value(key string) (hcl.Expression, bool) {
	attr, ok := b.attrs[key]
	if !ok {
		return nil, false
	}
	return attr.Expr, true
}

func (b *blockAttrs) str(key string) string {
	return b.strOr(key, "")
}

func (b *blockAttrs) strOr(key, def string) string {
	expr, ok := b.value(key)
	if !ok {
		return def
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() || !val.IsKnown() || val.IsNull() {
		b.fail(key, "expected a string")
		return def
	}
	if val.Type() != cty.String {
		b.fail(key, "expected a string")
		return def
	}
	return val.AsString()
}

func (b *blockAttrs) intOr(key string, def int) int {
	expr, ok := b.value(key)
	if !ok {
		return def
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() || !val.IsKnown() || val.IsNull() || val.Type() != cty.Number {
		b.fail(key, "expected a number")
		return def
	}
	f, _ := val.AsBigFloat().Float64()
	return int(f)
}

func (b *blockAttrs) date(key string) (time.Time, error) {
	raw := b.str(key)
	if raw == "" {
		return time.Time{}, errors.Newf(errors.TypeInput, "trip %q: %s is required", b.name, key)
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.TypeInput, err, "trip %q: %s must be YYYY-MM-DD", b.name, key)
	}
	return t, nil
}

func (b *blockAttrs) fail(key, msg string) {
	if b.err == nil {
		b.err = errors.Newf(errors.TypeParsing, "trip %q: attribute %s: %s", b.name, key, msg)
	}
}
