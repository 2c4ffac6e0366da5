package main

import (
	"fmt"
	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"github.com/thlorenz/raycast/util"
	"os"
	"strings"
)

const VERSION = "v0.1.0"

var cli struct {
	Logging   string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version   VersionFlag `help:"Print version information and quit" name:"version" short:"v"`
	Config    string      `help:"YAML configuration file with grid and crossing settings." short:"c" placeholder:"<config-file>"`
	TileSize  float64     `help:"World-space edge length of one tile. Overrides the configuration." short:"t"`
	Precision string      `help:"Decimal precision of tile offsets: 'production' or 'test'. Overrides the configuration." short:"p"`
	Epsilon   float64     `help:"Bracket width in world units at which the crossing search stops. Must not be below the offset precision. Overrides the configuration." short:"e"`
	Convert   struct {
		X float64 `help:"World x coordinate." arg:""`
		Y float64 `help:"World y coordinate." arg:""`
	} `cmd:"" help:"Converts world coordinates into a tile position. Use '--' before negative coordinates."`
	Delta struct {
		A string `help:"Tile position ((x, relX), (y, relY))." placeholder:"<position>" arg:""`
		B string `help:"Tile position ((x, relX), (y, relY))." placeholder:"<position>" arg:""`
	} `cmd:"" help:"Prints the delta a - b and its normalized form."`
	Distance struct {
		A string `help:"Tile position ((x, relX), (y, relY))." placeholder:"<position>" arg:""`
		B string `help:"Tile position ((x, relX), (y, relY))." placeholder:"<position>" arg:""`
	} `cmd:"" help:"Prints the global and relative distance of two tile positions."`
	Crossing struct {
		From    string `help:"Start of the segment ((x, relX), (y, relY))." placeholder:"<position>" arg:""`
		To      string `help:"End of the segment ((x, relX), (y, relY))." placeholder:"<position>" arg:""`
		Region  string `help:"Valid tiles as minX,minY,maxX,maxY (inclusive)." required:""`
		Geojson string `help:"Also write the result as GeoJSON to this file." placeholder:"<output-file>"`
	} `cmd:"" help:"Searches the point where the segment leaves or enters the region."`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("raycast"),
		kong.Description("Tile grid coordinate algebra and crossing search."),
		kong.Vars{
			"version": VERSION,
		},
	)

	if strings.ToLower(cli.Logging) == "debug" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	} else if strings.ToLower(cli.Logging) == "trace" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	} else if strings.ToLower(cli.Logging) == "info" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	} else {
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		sigolo.Fatalf("Unknown logging level '%s'", cli.Logging)
	}

	settings, err := loadSettings(cli.Config, cli.TileSize, cli.Precision, cli.Epsilon)
	sigolo.FatalCheck(err)

	switch ctx.Command() {
	case "convert <x> <y>":
		err = runConvert(os.Stdout, settings, cli.Convert.X, cli.Convert.Y)
	case "delta <a> <b>":
		err = runDelta(os.Stdout, settings, cli.Delta.A, cli.Delta.B)
	case "distance <a> <b>":
		err = runDistance(os.Stdout, settings, cli.Distance.A, cli.Distance.B)
	case "crossing <from> <to>":
		err = runCrossing(os.Stdout, settings, cli.Crossing.From, cli.Crossing.To, cli.Crossing.Region, cli.Crossing.Geojson)
	default:
		util.LogFatalBug("Unknown command '%s'", ctx.Command())
	}
	sigolo.FatalCheck(err)
}
