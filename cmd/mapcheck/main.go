// Command mapcheck validates level files and prints what the camera sees.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v3"

	"github.com/milk9111/thegame/camera"
	"github.com/milk9111/thegame/common"
	"github.com/milk9111/thegame/levels"
	"github.com/milk9111/thegame/object"
	"github.com/milk9111/thegame/tilemap"
)

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var dirFlag = &cli.StringFlag{
	Name:  "dir",
	Usage: "levels directory on disk; the embedded levels are used when empty",
}

func newApp(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "mapcheck",
		Usage: "inspect level files",
		Flags: []cli.Flag{dirFlag},
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "build levels and report their size, players and warps",
				ArgsUsage: "[level...]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					set, err := levels.LoadSet(levels.FS(cmd.String("dir")), cmd.Args().Slice()...)
					if err != nil {
						return err
					}
					for _, name := range set.Order {
						m := set.Maps[name]
						fmt.Fprintf(w, "ok %s %dx%d players=%d warps=%d\n",
							name, m.Width(), m.Height(), len(m.PlayerControlled()), len(m.WarpZones()))
					}
					return nil
				},
			},
			{
				Name:      "view",
				Usage:     "print the camera's field of view as text",
				ArgsUsage: "<level>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "x", Usage: "center column; defaults to the first player"},
					&cli.IntFlag{Name: "y", Usage: "center row; defaults to the first player"},
					&cli.IntFlag{Name: "width", Value: 9, Usage: "view width in tiles"},
					&cli.IntFlag{Name: "height", Value: 9, Usage: "view height in tiles"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := cmd.Args().First()
					if name == "" {
						return fmt.Errorf("view: level name required")
					}
					set, err := levels.LoadSet(levels.FS(cmd.String("dir")), name)
					if err != nil {
						return err
					}
					_, m, _ := set.First()

					center := common.Pt(m.Width()/2, m.Height()/2)
					if players := m.PlayerControlled(); len(players) > 0 {
						center = common.Pt(players[0].X, players[0].Y)
					}
					if cmd.IsSet("x") {
						center.X = int(cmd.Int("x"))
					}
					if cmd.IsSet("y") {
						center.Y = int(cmd.Int("y"))
					}
					cam := camera.New(int(cmd.Int("width")), int(cmd.Int("height")), center.X, center.Y)
					_, err = io.WriteString(w, view(cam, m))
					return err
				},
			},
			{
				Name:      "dump",
				Usage:     "print a parsed level definition",
				ArgsUsage: "<level>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					lvl, err := levels.LoadFile(levels.FS(cmd.String("dir")), cmd.Args().First())
					if err != nil {
						return err
					}
					cfg := spew.NewDefaultConfig()
					cfg.DisableCapacities = true
					cfg.DisablePointerAddresses = true
					cfg.Fdump(w, lvl)
					return nil
				},
			},
		},
	}
}

// view draws the top-most occupant of every visible cell. Cells outside the
// map are blank.
func view(cam camera.Camera, m *tilemap.Map) string {
	fov := cam.FieldOfView(m)
	left, top := cam.Window()

	var b strings.Builder
	for row := 0; row < cam.Height; row++ {
		for col := 0; col < cam.Width; col++ {
			if !m.InBounds(common.Pt(left+col, top+row)) {
				b.WriteByte(' ')
				continue
			}
			b.WriteByte(glyph(fov, col, row))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(fov [tilemap.LayerCount]tilemap.Grid, col, row int) byte {
	for l := tilemap.Foreground; l < tilemap.LayerCount; l++ {
		occ := fov[l][row][col]
		if occ == nil {
			continue
		}
		switch {
		case isControllable(occ):
			return '@'
		case isInteractable(occ):
			return '?'
		case occ.Base().Collides:
			return '#'
		}
		if name := occ.Base().Name; name != "" {
			return strings.ToLower(name)[0]
		}
		return '*'
	}
	return '.'
}

func isControllable(occ object.Occupant) bool {
	_, ok := occ.(object.Controllable)
	return ok
}

func isInteractable(occ object.Occupant) bool {
	_, ok := occ.(object.Interactable)
	return ok
}
